package consumption

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Pantry-Tracker-Backend/domain"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const exportSheet = "Consumption"

// ExportConsumptionLogs renders the user's consumption history as an xlsx
// workbook. The returned filename follows consumption_<username>_<date>.xlsx.
func (s *consumptionService) ExportConsumptionLogs(ctx context.Context, userID string) ([]byte, string, error) {
	owner, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", domain.ErrUserNotFound
		}
		return nil, "", err
	}

	logs, err := s.consumptionRepository.GetConsumptionLogs(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(sheet)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", err
	}

	headers := []string{"Date", "Item", "Quantity", "User"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, "", err
		}
	}

	for i, log := range logs {
		row := i + 2
		values := []interface{}{
			log.Date.Format("2006-01-02"),
			log.ItemName,
			log.QtyUsed,
			owner.Username,
		}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			if err := f.SetCellValue(exportSheet, cell, value); err != nil {
				return nil, "", err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf(
		"consumption_%s_%s.xlsx",
		owner.Username,
		time.Now().Format("2006-01-02"),
	)
	return buf.Bytes(), filename, nil
}
