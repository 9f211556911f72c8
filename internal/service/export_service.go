package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/KhanhKH069/icnlab-website-fixed/internal/repository"
)

var ErrExportNoPublications = errors.New("no publications to export")

// ExportService renders admin exports. The buffer is returned to the handler,
// which sets the download headers and writes it out.
type ExportService interface {
	// ExportPublications renders every publication (published or not) as an
	// Excel workbook and returns the content plus a suggested filename.
	ExportPublications(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates the ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportPublications(ctx context.Context) (*bytes.Buffer, string, error) {
	pubs, err := s.repo.Publication.ListAll(ctx)
	if err != nil {
		s.logger.Error("list publications for export failed", zap.Error(err))
		return nil, "", err
	}
	if len(pubs) == 0 {
		return nil, "", ErrExportNoPublications
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Publications"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Title", "Authors", "Venue", "Year", "Type", "DOI", "Citations", "Published"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, pub := range pubs {
		values := []interface{}{
			pub.Title,
			strings.Join(pub.Authors, "; "),
			pub.Venue,
			pub.Year,
			pub.Type,
			pub.DOI,
			pub.Citations,
			pub.IsPublished,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("write export workbook failed", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("publications-%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}
