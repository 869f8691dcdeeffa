package adapter

import (
	m "gooze.dev/pkg/gooze/internal/model"
)

type ReportStore interface {
	SaveReports(path m.Path, reports []m.ReportV2) error
	LoadReports(path m.Path) ([]m.ReportV2, error)
}
