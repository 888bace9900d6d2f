package usecase

import (
	"context"
	"strings"

	taskdomain "planner-backend/internal/task/domain"
	taskrepo "planner-backend/internal/task/repository"
	"planner-backend/pkg/logger"
	"planner-backend/pkg/nager"
)

// HolidayProvider abstracts the external holiday source
type HolidayProvider interface {
	PublicHolidays(ctx context.Context, year int, country string) ([]nager.Holiday, error)
}

// ImportedTask is one newly created task in an import report
type ImportedTask struct {
	ID    string              `json:"id"`
	Title string              `json:"title"`
	Date  string              `json:"date"`
	Type  taskdomain.TaskType `json:"type"`
}

// ImportResult reports the outcome of a holiday import
type ImportResult struct {
	Imported int            `json:"imported"`
	Skipped  int            `json:"skipped"`
	Details  []ImportedTask `json:"details"`
}

// ImporterUsecase defines the interface for the holiday importer
type ImporterUsecase interface {
	// ImportHolidays fetches the public holidays of a country/year and
	// inserts the ones the user does not have yet.
	ImportHolidays(ctx context.Context, userID, country string, year int) (*ImportResult, error)
}

// importerUsecase implements ImporterUsecase
type importerUsecase struct {
	provider HolidayProvider
	taskRepo taskrepo.TaskRepository
}

// NewImporterUsecase creates a new instance of importerUsecase
func NewImporterUsecase(provider HolidayProvider, taskRepo taskrepo.TaskRepository) ImporterUsecase {
	return &importerUsecase{
		provider: provider,
		taskRepo: taskRepo,
	}
}

// ImportHolidays maps provider records to holiday tasks and inserts the
// non-duplicate ones. A candidate is a duplicate when the user already has a
// holiday task on the same date; the title is not part of the key, so two
// same-day holidays collapse to one. The fetch happens before any write, so a
// provider failure never leaves a partial import behind.
func (u *importerUsecase) ImportHolidays(ctx context.Context, userID, country string, year int) (*ImportResult, error) {
	holidays, err := u.provider.PublicHolidays(ctx, year, country)
	if err != nil {
		return nil, err
	}

	existing, err := u.taskRepo.HolidayDates(userID)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Details: []ImportedTask{}}
	for _, holiday := range holidays {
		title := holidayTitle(holiday)
		date := holidayDate(holiday)

		if existing[date] {
			result.Skipped++
			continue
		}

		task, err := taskdomain.NewTask(userID, title, date, taskdomain.TypeHoliday, taskdomain.SourceNager)
		if err != nil {
			// malformed provider record, count it as skipped
			logger.Warn("skipping malformed holiday record", "country", country, "date", holiday.Date, "error", err)
			result.Skipped++
			continue
		}
		if err := u.taskRepo.Create(task); err != nil {
			return nil, err
		}

		existing[date] = true
		result.Imported++
		result.Details = append(result.Details, ImportedTask{
			ID:    task.ID,
			Title: task.Title,
			Date:  task.Date,
			Type:  task.Type,
		})
	}

	logger.Info("holiday import finished",
		"country", country, "year", year,
		"imported", result.Imported, "skipped", result.Skipped)
	return result, nil
}

func holidayTitle(h nager.Holiday) string {
	title := strings.TrimSpace(h.LocalName)
	if title == "" {
		title = strings.TrimSpace(h.Name)
	}
	if title == "" {
		title = "Holiday"
	}
	return title
}

func holidayDate(h nager.Holiday) string {
	// provider dates may carry a time component
	if len(h.Date) > 10 {
		return h.Date[:10]
	}
	return h.Date
}
