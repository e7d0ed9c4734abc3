package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"

	"github.com/bcheye/fantasy-foundry/controller"
	"github.com/bcheye/fantasy-foundry/db"
)

const (
	statusSuccess = "success"
	statusPartial = "partial"
	statusError   = "error"
)

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func renderStatus(render *render.Render, w http.ResponseWriter, code int, status, message string) {
	render.JSON(w, code, statusResponse{Status: status, Message: message})
}

// entryIDParam parses the {entryID} URL parameter. The route pattern already
// restricts it to digits, so failures here mean the value overflows.
func entryIDParam(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "entryID"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid entry id: %w", err)
	}
	return int32(id), nil
}

func syncBootstrapHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.SyncBootstrap(r.Context()); err != nil {
			renderStatus(render, w, http.StatusBadGateway, statusError, err.Error())
			return
		}
		renderStatus(render, w, http.StatusOK, statusSuccess, "bootstrap data synced")
	}
}

func syncUserHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID, err := entryIDParam(r)
		if err != nil {
			renderStatus(render, w, http.StatusBadRequest, statusError, err.Error())
			return
		}

		if err := ctrl.SyncEntry(r.Context(), entryID); err != nil {
			renderStatus(render, w, http.StatusBadGateway, statusError, err.Error())
			return
		}
		renderStatus(render, w, http.StatusOK, statusSuccess, fmt.Sprintf("entry %d synced", entryID))
	}
}

func syncHistoryHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID, err := entryIDParam(r)
		if err != nil {
			renderStatus(render, w, http.StatusBadRequest, statusError, err.Error())
			return
		}

		if err := ctrl.SyncEntryHistory(r.Context(), entryID); err != nil {
			renderStatus(render, w, http.StatusBadGateway, statusError, err.Error())
			return
		}
		renderStatus(render, w, http.StatusOK, statusSuccess, fmt.Sprintf("history for entry %d synced", entryID))
	}
}

func syncLeaguesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID, err := entryIDParam(r)
		if err != nil {
			renderStatus(render, w, http.StatusBadRequest, statusError, err.Error())
			return
		}

		report, err := ctrl.SyncInvitationalLeagues(r.Context(), entryID)
		if err != nil {
			renderStatus(render, w, http.StatusBadGateway, statusError, err.Error())
			return
		}

		status := statusSuccess
		if !report.Success() {
			status = statusPartial
		}
		renderStatus(render, w, http.StatusOK, status, report.String())
	}
}

const defaultPlayerListLimit = 100

func listPlayersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := limitParam(r, defaultPlayerListLimit)
		if err != nil {
			renderStatus(render, w, http.StatusBadRequest, statusError, err.Error())
			return
		}

		players, err := ctrl.ListPlayers(r.Context(), limit)
		if err != nil {
			renderStatus(render, w, http.StatusInternalServerError, statusError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, players)
	}
}

func topPlayersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := limitParam(r, 10)
		if err != nil {
			renderStatus(render, w, http.StatusBadRequest, statusError, err.Error())
			return
		}

		// position filters by position type id, 0 means all positions.
		var positionTypeID int32
		if p := r.URL.Query().Get("position"); p != "" {
			id, err := strconv.ParseInt(p, 10, 32)
			if err != nil {
				renderStatus(render, w, http.StatusBadRequest, statusError, fmt.Sprintf("invalid position: %v", err))
				return
			}
			positionTypeID = int32(id)
		}

		players, err := ctrl.GetTopPlayers(r.Context(), positionTypeID, limit)
		if err != nil {
			renderStatus(render, w, http.StatusInternalServerError, statusError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, players)
	}
}

func gameweekHistoryHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID, err := entryIDParam(r)
		if err != nil {
			renderStatus(render, w, http.StatusBadRequest, statusError, err.Error())
			return
		}

		history, err := ctrl.GetGameweekHistory(r.Context(), entryID)
		if err != nil {
			renderStatus(render, w, http.StatusInternalServerError, statusError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, history)
	}
}

func overviewHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID, err := entryIDParam(r)
		if err != nil {
			renderStatus(render, w, http.StatusBadRequest, statusError, err.Error())
			return
		}

		overview, err := ctrl.GetOverview(r.Context(), entryID)
		if err != nil {
			if errors.Is(err, db.ErrOverviewNotFound) || errors.Is(err, db.ErrNoCurrentGameweek) {
				renderStatus(render, w, http.StatusNotFound, statusError, "no overview data for entry, sync it first")
				return
			}
			renderStatus(render, w, http.StatusInternalServerError, statusError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, overview)
	}
}

func miniLeaguesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID, err := entryIDParam(r)
		if err != nil {
			renderStatus(render, w, http.StatusBadRequest, statusError, err.Error())
			return
		}

		leagues, err := ctrl.GetMiniLeagues(r.Context(), entryID)
		if err != nil {
			renderStatus(render, w, http.StatusInternalServerError, statusError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, leagues)
	}
}

func limitParam(r *http.Request, def int) (int, error) {
	l := r.URL.Query().Get("limit")
	if l == "" {
		return def, nil
	}
	limit, err := strconv.Atoi(l)
	if err != nil || limit < 0 {
		return 0, fmt.Errorf("invalid limit: %q", l)
	}
	return limit, nil
}
