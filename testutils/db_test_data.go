package testutils

import (
	"context"
	"log"
	"time"

	"github.com/itbasis/go-clock"

	"github.com/bcheye/fantasy-foundry/containers"
	"github.com/bcheye/fantasy-foundry/db"
	"github.com/bcheye/fantasy-foundry/model"
)

var (
	TestTeams = []model.Team{
		{ID: 1, Name: "Arsenal", ShortName: "ARS", StrengthOverallHome: 1350, StrengthOverallAway: 1380},
		{ID: 2, Name: "Liverpool", ShortName: "LIV", StrengthOverallHome: 1360, StrengthOverallAway: 1385},
	}

	TestPositions = []model.Position{
		{ID: 1, SingularName: "Goalkeeper", PluralName: "Goalkeepers"},
		{ID: 3, SingularName: "Midfielder", PluralName: "Midfielders"},
		{ID: 4, SingularName: "Forward", PluralName: "Forwards"},
	}

	TestPlayers = []model.Player{
		{
			ID: 233, FirstName: "Mohamed", SecondName: "Salah", Name: "M.Salah",
			TeamID: 2, PositionTypeID: 3, Cost: 13.1, TotalPoints: 29,
			SelectedByPercent: "56.3", Minutes: 180, GoalsScored: 3, Assists: 1,
			CleanSheets: 1,
		},
		{
			ID: 401, FirstName: "Bukayo", SecondName: "Saka", Name: "Saka",
			TeamID: 1, PositionTypeID: 3, Cost: 10.2, TotalPoints: 18,
			SelectedByPercent: "34.1", Minutes: 166, GoalsScored: 1, Assists: 2,
			CleanSheets: 1, YellowCards: 1,
		},
		{
			ID: 58, FirstName: "David", SecondName: "Raya Martin", Name: "Raya",
			TeamID: 1, PositionTypeID: 1, Cost: 5.5, TotalPoints: 12,
			SelectedByPercent: "21.8", Minutes: 180, CleanSheets: 2,
		},
	}

	TestGameweeks = []model.Gameweek{
		{
			ID: 1, Name: "Gameweek 1",
			DeadlineTime:      time.Date(2025, 8, 15, 17, 30, 0, 0, time.UTC),
			AverageEntryScore: 57, Finished: true, DataChecked: true,
		},
		{
			ID: 2, Name: "Gameweek 2",
			DeadlineTime: time.Date(2025, 8, 22, 17, 30, 0, 0, time.UTC),
			IsCurrent:    true,
		},
	}
)

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     clock.Clock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.New()

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	if err := InsertTestData(db); err != nil {
		log.Fatalf("error populating db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}

// InsertTestData seeds the reference tables every query test depends on.
func InsertTestData(db db.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.UpsertTeams(ctx, TestTeams); err != nil {
		return err
	}
	if err := db.UpsertPositions(ctx, TestPositions); err != nil {
		return err
	}
	if err := db.UpsertPlayers(ctx, TestPlayers); err != nil {
		return err
	}
	return db.UpsertGameweeks(ctx, TestGameweeks)
}
