package provider

import (
	"testing"
	"time"

	"github.com/minashiro/recruit-admin/internal/clients/backend"
	"github.com/stretchr/testify/assert"
)

func Test_ProcessAllowances_DropsRowsWhereEveryFieldIsEmpty(t *testing.T) {

	assert := assert.New(t)

	rows := processAllowances([]any{
		map[string]any{"name": " 住宅手当 ", "first_allowance": "２００００"},
		map[string]any{"name": "", "first_allowance": nil, "second_allowance": ""},
		map[string]any{"name": "", "fourth_allowance": 5000.0},
	})

	assert.Len(rows, 2)
	assert.Equal("住宅手当", rows[0].Name)
	assert.Equal(20000.0, *rows[0].FirstAllowance)
	assert.Nil(rows[0].SecondAllowance)
	assert.Equal(5000.0, *rows[1].FourthAllowance)
}

func Test_ProcessAllowances_NonArrayInputYieldsEmptyTable(t *testing.T) {
	assert.Equal(t, []allowanceRow{}, processAllowances("not a table"))
	assert.Equal(t, []allowanceRow{}, processAllowances(nil))
}

func Test_BuildRequirementCreatePayload_CoercesAndStamps(t *testing.T) {

	assert := assert.New(t)
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	payload, err := buildRequirementCreatePayload(backend.Record{
		"job_category_id":       "2",
		"recruiting_count":      "１０",
		"starting_salary_first": "250,000",
		"submission_objects_id": []any{"1", "4"},
		"note":                  nil,
	}, "101", now)

	assert.NoError(err)
	assert.Equal(101.0, payload.AdvertisementID)
	assert.Equal(2.0, payload.JobCategoryID)
	assert.Equal(10.0, payload.RecruitingCount)
	assert.Equal(250000.0, payload.StartingSalaryFirst)
	assert.Equal([]float64{1, 4}, payload.SubmissionObjectsID)
	assert.Equal("", payload.Note)
	assert.Equal("2026-04-01T09:00:00Z", payload.CreatedAt)
	assert.Equal(payload.CreatedAt, payload.UpdatedAt)
}

func Test_BuildRequirementCreatePayload_RejectsMissingAdvertisement(t *testing.T) {

	_, err := buildRequirementCreatePayload(backend.Record{}, "", time.Now())
	assert.Error(t, err)
}

func Test_NormalizeRequirementUpdate_ReCoercesReferenceFields(t *testing.T) {

	assert := assert.New(t)
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	payload := normalizeRequirementUpdate(backend.Record{
		"job_category_id": "3",
		"prefecture_id":   []any{"13", "27"},
		"working_hours":   "9:00-18:00",
		"various_allowances": []any{
			map[string]any{"name": "", "first_allowance": ""},
		},
	}, now)

	assert.Equal(3.0, payload["job_category_id"])
	assert.Equal([]float64{13, 27}, payload["prefecture_id"])
	assert.Equal("9:00-18:00", payload["working_hours"])
	assert.Equal([]allowanceRow{}, payload["various_allowances"])
	assert.Equal("2026-04-01T09:00:00Z", payload["updated_at"])
}
