package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms-backend/internal/attendance"
	"hrms-backend/internal/platform/apierr"
)

type fakeRecord struct {
	employeeID string
	date       string
	status     string
}

type fakeStore struct {
	employees map[string]string // employee_id -> full_name
	records   []fakeRecord
}

func (f *fakeStore) CountEmployees(_ context.Context) (int64, error) {
	return int64(len(f.employees)), nil
}

func (f *fakeStore) EmployeeFullName(_ context.Context, employeeID string) (string, bool, error) {
	name, ok := f.employees[employeeID]
	return name, ok, nil
}

func (f *fakeStore) CountAttendance(_ context.Context, flt AttendanceFilter) (int64, error) {
	var n int64
	for _, r := range f.records {
		if flt.EmployeeID != "" && r.employeeID != flt.EmployeeID {
			continue
		}
		if flt.Date != "" && r.date != flt.Date {
			continue
		}
		if flt.Status != "" && r.status != flt.Status {
			continue
		}
		n++
	}
	return n, nil
}

func (f *fakeStore) CountAttendedEmployees(_ context.Context) (int64, error) {
	seen := map[string]struct{}{}
	for _, r := range f.records {
		seen[r.employeeID] = struct{}{}
	}
	return int64(len(seen)), nil
}

func fixedNow(date string) func() time.Time {
	t, _ := time.Parse(attendance.DateLayout, date)
	return func() time.Time { return t }
}

func TestOverall_PresentPlusAbsentEqualsTotal(t *testing.T) {
	store := &fakeStore{
		employees: map[string]string{"E1": "A B", "E2": "C D", "E3": "E F"},
		records: []fakeRecord{
			{"E1", "2024-01-01", "Present"},
			{"E1", "2024-01-02", "Absent"},
			{"E2", "2024-01-01", "Present"},
		},
	}
	svc := NewService(store)

	res, err := svc.Overall(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), res.TotalEmployees)
	assert.Equal(t, int64(2), res.EmployeesWithAttendance)
	assert.Equal(t, int64(3), res.TotalAttendanceRecords)
	assert.Equal(t, int64(2), res.TotalPresent)
	assert.Equal(t, int64(1), res.TotalAbsent)
	assert.Equal(t, res.TotalAttendanceRecords, res.TotalPresent+res.TotalAbsent)
}

func TestOverall_EmptyStore(t *testing.T) {
	svc := NewService(&fakeStore{employees: map[string]string{}})

	res, err := svc.Overall(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OverallStatsResponse{}, res)
}

func TestToday_ZeroEmployeesZeroPercentage(t *testing.T) {
	store := &fakeStore{
		employees: map[string]string{},
		// records without an owning employee still must not divide by zero
		records: []fakeRecord{{"ghost", "2024-01-01", "Present"}},
	}
	svc := NewService(store)
	svc.now = fixedNow("2024-01-01")

	res, err := svc.Today(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(0), res.AttendancePercentage)
	assert.Equal(t, int64(1), res.AttendanceMarked)
}

func TestToday_PercentageRoundedTo2(t *testing.T) {
	store := &fakeStore{
		employees: map[string]string{"E1": "A", "E2": "B", "E3": "C"},
		records: []fakeRecord{
			{"E1", "2024-01-01", "Present"},
			{"E2", "2023-12-31", "Present"}, // not today
		},
	}
	svc := NewService(store)
	svc.now = fixedNow("2024-01-01")

	res, err := svc.Today(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", res.Date)
	assert.Equal(t, int64(1), res.AttendanceMarked)
	assert.Equal(t, int64(1), res.PresentToday)
	assert.Equal(t, int64(0), res.AbsentToday)
	// 1/3 * 100 = 33.333... -> 33.33
	assert.Equal(t, 33.33, res.AttendancePercentage)
}

func TestSummary_NotFound(t *testing.T) {
	svc := NewService(&fakeStore{employees: map[string]string{}})

	_, err := svc.Summary(context.Background(), "E9")
	require.Error(t, err)

	api, ok := err.(*apierr.APIError)
	require.True(t, ok)
	assert.Equal(t, apierr.CodeNotFound, api.Code)
}

func TestSummary_Counts(t *testing.T) {
	store := &fakeStore{
		employees: map[string]string{"E1": "A B"},
		records: []fakeRecord{
			{"E1", "2024-01-01", "Present"},
			{"E1", "2024-01-02", "Absent"},
			{"E1", "2024-01-03", "Present"},
			{"E2", "2024-01-01", "Present"}, // other employee, ignored
		},
	}
	svc := NewService(store)

	res, err := svc.Summary(context.Background(), "E1")
	require.NoError(t, err)

	assert.Equal(t, "E1", res.EmployeeID)
	assert.Equal(t, "A B", res.FullName)
	assert.Equal(t, int64(3), res.TotalDays)
	assert.Equal(t, int64(2), res.PresentDays)
	assert.Equal(t, int64(1), res.AbsentDays)
}

func TestRoundTo2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{33.333333, 33.33},
		{66.666666, 66.67},
		{100, 100},
		{0, 0},
		{12.346, 12.35},
	}
	for _, tc := range cases {
		if got := roundTo2(tc.in); got != tc.want {
			t.Errorf("roundTo2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
