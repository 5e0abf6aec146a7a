package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/domain/repository"
)

var datasetHeader = []string{
	"place_id", "name", "district", "description", "region",
	"category", "estimated_time_to_visit", "latitude", "longitude",
	"name_length", "description_word_count", "location_zone",
}

// DatasetRefreshUseCase выгружает каталог для ML-сервиса и просит его переобучиться
type DatasetRefreshUseCase struct {
	placeRepo   repository.PlaceRepository
	recommender repository.RecommenderRepository
	anchor      domain.Anchor
	datasetPath string
	logger      *zap.Logger
}

// NewDatasetRefreshUseCase - создание нового DatasetRefreshUseCase
func NewDatasetRefreshUseCase(
	placeRepo repository.PlaceRepository,
	recommender repository.RecommenderRepository,
	anchor domain.Anchor,
	datasetPath string,
	logger *zap.Logger,
) *DatasetRefreshUseCase {
	return &DatasetRefreshUseCase{
		placeRepo:   placeRepo,
		recommender: recommender,
		anchor:      anchor,
		datasetPath: datasetPath,
		logger:      logger,
	}
}

// Refresh - экспорт датасета, перезагрузка данных и переобучение модели
func (uc *DatasetRefreshUseCase) Refresh(ctx context.Context) error {
	places, err := uc.placeRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	if err := uc.export(places); err != nil {
		return err
	}
	uc.logger.Info("ML dataset exported",
		zap.String("path", uc.datasetPath),
		zap.Int("places", len(places)))

	if uc.recommender == nil {
		return nil
	}
	if err := uc.recommender.ReloadData(ctx); err != nil {
		return fmt.Errorf("failed to reload recommender data: %w", err)
	}
	if err := uc.recommender.Retrain(ctx); err != nil {
		return fmt.Errorf("failed to retrain recommender: %w", err)
	}

	uc.logger.Info("Recommender reloaded and retrained")
	return nil
}

// export пишет во временный файл и атомарно подменяет датасет
func (uc *DatasetRefreshUseCase) export(places []*domain.Place) error {
	dir := filepath.Dir(uc.datasetPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create dataset dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".dataset-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create dataset file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteDatasetCSV(tmp, places, uc.anchor); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close dataset file: %w", err)
	}
	if err := os.Rename(tmp.Name(), uc.datasetPath); err != nil {
		return fmt.Errorf("failed to replace dataset: %w", err)
	}
	return nil
}

// WriteDatasetCSV - выгрузка каталога с производными признаками для обучения
func WriteDatasetCSV(w io.Writer, places []*domain.Place, anchor domain.Anchor) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(datasetHeader); err != nil {
		return fmt.Errorf("failed to write dataset header: %w", err)
	}

	for _, p := range places {
		zone := ""
		if p.HasCoordinates() {
			zone = string(classifyPlace(p, anchor))
		}
		row := []string{
			p.PlaceID,
			p.Name,
			p.District,
			p.Description,
			p.Region,
			p.Category,
			formatOptional(p.EstimatedTimeToVisit),
			formatOptional(p.Latitude),
			formatOptional(p.Longitude),
			strconv.Itoa(len(p.Name)),
			strconv.Itoa(len(strings.Fields(p.Description))),
			zone,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write dataset row %s: %w", p.PlaceID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
