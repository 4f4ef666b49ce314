package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ShettyBro/scheduling-simulator/internal/scheduler"
)

// loadProcesses parses CSV rows of id,burst,arrival and an optional fourth
// priority column into engine process records.
func loadProcesses(r io.Reader) ([]scheduler.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // priority column is optional
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	processes := make([]scheduler.Process, len(rows))
	for i, row := range rows {
		if len(row) < 3 {
			return nil, fmt.Errorf("row %d: want at least 3 columns, got %d", i+1, len(row))
		}
		if processes[i].ProcessID, err = strToInt(row[0]); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if processes[i].BurstDuration, err = strToInt(row[1]); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if processes[i].ArrivalTime, err = strToInt(row[2]); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if len(row) >= 4 {
			if processes[i].Priority, err = strToInt(row[3]); err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
		}
	}

	return processes, nil
}

func strToInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
