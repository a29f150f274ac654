package service

import (
	"fmt"
	"hotelops/internal/domains/booking/model"
	"hotelops/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const (
	exportSheet    = "Bookings"
	exportFirstRow = 3
)

var exportHeaders = []string{
	"Guest", "Email", "Phone", "Room", "Check-in", "Check-out", "Adults", "Children", "Nights", "Total", "Status",
}

func renderWorkbook(bookings []model.Booking, from, to time.Time) ([]byte, error) {
	f := excelize.NewFile()

	defer func() {
		if err := f.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close workbook")
		}
	}()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	f.SetActiveSheet(index)

	if err = f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}

	if err = writeTitle(f, from, to); err != nil {
		return nil, err
	}

	if err = writeHeader(f); err != nil {
		return nil, err
	}

	var revenue float64

	for i, booking := range bookings {
		row := []any{
			booking.GuestName,
			booking.Email,
			booking.Phone,
			booking.RoomNumber,
			timezone.FormatDate(booking.CheckInDate),
			timezone.FormatDate(booking.CheckOutDate),
			booking.Adults,
			booking.Children,
			booking.Nights,
			booking.TotalPrice,
			booking.Status,
		}

		cell, _ := excelize.CoordinatesToCellName(1, exportFirstRow+i)
		if err = f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write booking row: %w", err)
		}

		if booking.Status != model.StatusCancelled {
			revenue += booking.TotalPrice
		}
	}

	totalRow := exportFirstRow + len(bookings) + 1
	labelCell, _ := excelize.CoordinatesToCellName(len(exportHeaders)-2, totalRow)
	valueCell, _ := excelize.CoordinatesToCellName(len(exportHeaders)-1, totalRow)

	if err = f.SetCellValue(exportSheet, labelCell, "Revenue"); err != nil {
		return nil, fmt.Errorf("failed to write revenue label: %w", err)
	}

	if err = f.SetCellValue(exportSheet, valueCell, revenue); err != nil {
		return nil, fmt.Errorf("failed to write revenue: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func writeTitle(f *excelize.File, from, to time.Time) error {
	lastCell, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)

	if err := f.SetCellValue(exportSheet, "A1", fmt.Sprintf("Bookings %s to %s", timezone.FormatDate(from), timezone.FormatDate(to))); err != nil {
		return fmt.Errorf("failed to write title: %w", err)
	}

	if err := f.MergeCell(exportSheet, "A1", lastCell); err != nil {
		return fmt.Errorf("failed to merge title: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err == nil {
		_ = f.SetCellStyle(exportSheet, "A1", "A1", style)
	}

	return nil
}

func writeHeader(f *excelize.File) error {
	first, _ := excelize.CoordinatesToCellName(1, exportFirstRow-1)
	last, _ := excelize.CoordinatesToCellName(len(exportHeaders), exportFirstRow-1)

	if err := f.SetSheetRow(exportSheet, first, &exportHeaders); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err == nil {
		_ = f.SetCellStyle(exportSheet, first, last, style)
	}

	return nil
}
