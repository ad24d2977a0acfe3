// Команда seed наполняет базу данных стартовым набором программ
// тренировок и упражнений. Запускается вручную после первого развертывания.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/magabrotheeeer/fitness-tracker/internal/config"
	"github.com/magabrotheeeer/fitness-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/fitness-tracker/internal/migrations"
	"github.com/magabrotheeeer/fitness-tracker/internal/storage"
)

type seedExercise struct {
	name       string
	difficulty string
	programs   []string
}

var seedPrograms = []string{"Full Body", "Upper Body", "Cardio"}

var seedExercises = []seedExercise{
	{name: "Push-ups", difficulty: "EASY", programs: []string{"Full Body", "Upper Body"}},
	{name: "Squats", difficulty: "EASY", programs: []string{"Full Body"}},
	{name: "Pull-ups", difficulty: "HARD", programs: []string{"Upper Body"}},
	{name: "Plank", difficulty: "MEDIUM", programs: []string{"Full Body"}},
	{name: "Burpees", difficulty: "HARD", programs: []string{"Cardio", "Full Body"}},
	{name: "Jumping Jacks", difficulty: "EASY", programs: []string{"Cardio"}},
}

func main() {
	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		logger.Error("failed to connect to storage", sl.Err(err))
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close storage", sl.Err(err))
		}
	}()

	if err := migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		logger.Error("failed to run migrations", sl.Err(err))
		os.Exit(1)
	}

	ctx := context.Background()

	programIDs := make(map[string]int, len(seedPrograms))
	for _, name := range seedPrograms {
		id, err := db.CreateProgram(ctx, name)
		if err != nil {
			logger.Error("failed to create program", slog.String("name", name), sl.Err(err))
			os.Exit(1)
		}
		programIDs[name] = id
		logger.Info("program created", slog.String("name", name), slog.Int("id", id))
	}

	for _, e := range seedExercises {
		ids := make([]int, 0, len(e.programs))
		for _, p := range e.programs {
			ids = append(ids, programIDs[p])
		}
		id, err := db.CreateExercise(ctx, e.name, e.difficulty, ids)
		if err != nil {
			logger.Error("failed to create exercise", slog.String("name", e.name), sl.Err(err))
			os.Exit(1)
		}
		logger.Info("exercise created", slog.String("name", e.name), slog.Int("id", id))
	}

	logger.Info("seeding completed")
}
