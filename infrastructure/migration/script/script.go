package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"time"

	"github.com/insitemarketing/metryka-api/infrastructure/database/postgres"
	"github.com/insitemarketing/metryka-api/infrastructure/filestore"
	"github.com/insitemarketing/metryka-api/infrastructure/repository"
	"github.com/insitemarketing/metryka-api/internal/config"
	"github.com/insitemarketing/metryka-api/internal/domain"
	"github.com/insitemarketing/metryka-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Copia o cadastro de clínicas do arquivo JSON para o PostgreSQL. Usado uma
// vez, ao trocar STORAGE_DRIVER de file para postgres. Pode ser repetido:
// clínicas já importadas são ignoradas.

type clinicLister interface {
	List(ctx context.Context) ([]*domain.Clinic, error)
}

type importResult struct {
	Imported int
	Skipped  int
	Failed   int
}

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração de clínicas...")
}

func importClinics(ctx context.Context, source clinicLister, target repository.ClinicRepository) (importResult, error) {
	var result importResult

	clinics, err := source.List(ctx)
	if err != nil {
		return result, err
	}

	logrus.Infof("Iniciando inserção de %d clínicas...", len(clinics))
	startTime := time.Now()

	for i, c := range clinics {
		// o arquivo não guarda ID
		if c.ID == "" {
			id, err := utils.GenerateID()
			if err != nil {
				return result, err
			}
			c.ID = id
		}
		if c.CreatedAt.IsZero() {
			c.CreatedAt = time.Now().UTC()
		}

		inserted, err := target.InsertIfAbsent(ctx, c)
		switch {
		case err != nil:
			logrus.WithError(err).Errorf("ERRO ao inserir clínica [%d/%d] %s", i+1, len(clinics), c.Name)
			result.Failed++
		case !inserted:
			logrus.WithField("clinic_name", c.Name).Debug("Clínica já existe no banco")
			result.Skipped++
		default:
			result.Imported++
		}

		if i > 0 && i%10 == 0 {
			logrus.Infof("Progresso: %d/%d clínicas processadas", i+1, len(clinics))
		}
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"imported": result.Imported,
		"skipped":  result.Skipped,
		"failed":   result.Failed,
	}).Info("Migração de clínicas concluída")

	return result, nil
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	clinicFile := flag.String("file", cfg.Storage.ClinicFile, "arquivo JSON de clínicas")
	flag.Parse()

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := postgres.RunMigrations(conn.DB); err != nil {
		logrus.WithError(err).Fatal("ERRO ao aplicar migrações")
	}

	source := filestore.NewClinicStore(*clinicFile)

	// tudo ou nada: uma falha desfaz as inserções anteriores
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		result, err := importClinics(ctx, source, repository.NewClinicRepository(tx))
		if err != nil {
			return err
		}
		if result.Failed > 0 {
			return fmt.Errorf("%d clínicas não foram importadas", result.Failed)
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Fatal("ERRO na migração de clínicas")
	}
}
