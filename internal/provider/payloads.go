package provider

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/minashiro/recruit-admin/internal/clients/backend"
	"github.com/pkg/errors"
)

var payloadValidator = validator.New()

// allowanceRow is one line of the various-allowances table. The four yearly
// columns keep nil for "not entered" so the backend can tell absence from a
// zero-yen allowance.
type allowanceRow struct {
	Name            string   `json:"name"`
	FirstAllowance  *float64 `json:"first_allowance"`
	SecondAllowance *float64 `json:"second_allowance"`
	ThirdAllowance  *float64 `json:"third_allowance"`
	FourthAllowance *float64 `json:"fourth_allowance"`
}

func (row allowanceRow) isEmpty() bool {
	return row.Name == "" &&
		row.FirstAllowance == nil &&
		row.SecondAllowance == nil &&
		row.ThirdAllowance == nil &&
		row.FourthAllowance == nil
}

// processAllowances normalizes the allowance table from form input: names
// trimmed, amounts parsed with full-width digits folded, and rows where every
// field is empty dropped entirely.
func processAllowances(value any) []allowanceRow {

	items, ok := value.([]any)
	if !ok {
		return []allowanceRow{}
	}

	rows := make([]allowanceRow, 0, len(items))
	for _, item := range items {
		object, ok := item.(map[string]any)
		if !ok {
			continue
		}

		row := allowanceRow{
			Name:            strings.TrimSpace(toStringSafe(object["name"])),
			FirstAllowance:  toOptionalNumber(object["first_allowance"]),
			SecondAllowance: toOptionalNumber(object["second_allowance"]),
			ThirdAllowance:  toOptionalNumber(object["third_allowance"]),
			FourthAllowance: toOptionalNumber(object["fourth_allowance"]),
		}
		if row.isEmpty() {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// requirementPayload is the exact shape the backend accepts for a
// requirement write: numbers coerced with the numeric-or-zero rule, free
// text with value-or-empty-string, reference sets as numeric arrays.
type requirementPayload struct {
	AdvertisementID      float64        `json:"advertisement_id" validate:"required"`
	JobCategoryID        float64        `json:"job_category_id"`
	RecruitmentFlow      string         `json:"recruitment_flow"`
	EmploymentStatus     string         `json:"employment_status"`
	RequiredDays         string         `json:"required_days"`
	TrialPeriod          string         `json:"trial_period"`
	WorkingHours         string         `json:"working_hours"`
	Note                 string         `json:"note"`
	RecruitingCount      float64        `json:"recruiting_count" validate:"gte=0"`
	StartingSalaryFirst  float64        `json:"starting_salary_first" validate:"gte=0"`
	StartingSalarySecond float64        `json:"starting_salary_second" validate:"gte=0"`
	StartingSalaryThird  float64        `json:"starting_salary_third" validate:"gte=0"`
	StartingSalaryFourth float64        `json:"starting_salary_fourth" validate:"gte=0"`
	SalaryIncrease       float64        `json:"salary_increase"`
	Bonus                float64        `json:"bonus"`
	HolidayLeave         float64        `json:"holiday_leave"`
	Flex                 any            `json:"flex"`
	EmployeeDormitory    any            `json:"employee_dormitory"`
	ContractHousing      any            `json:"contract_housing"`
	SubmissionObjectsID  []float64      `json:"submission_objects_id"`
	PrefectureID         []float64      `json:"prefecture_id"`
	WelfareBenefitsID    []float64      `json:"welfare_benefits_id"`
	VariousAllowances    []allowanceRow `json:"various_allowances"`
	UpdatedAt            string         `json:"updated_at"`
	CreatedAt            string         `json:"created_at"`
}

func buildRequirementCreatePayload(data backend.Record, advertisementID string, now time.Time) (*requirementPayload, error) {

	payload := &requirementPayload{
		AdvertisementID:      toNumber(advertisementID),
		JobCategoryID:        toNumber(data["job_category_id"]),
		RecruitmentFlow:      toStringSafe(data["recruitment_flow"]),
		EmploymentStatus:     toStringSafe(data["employment_status"]),
		RequiredDays:         toStringSafe(data["required_days"]),
		TrialPeriod:          toStringSafe(data["trial_period"]),
		WorkingHours:         toStringSafe(data["working_hours"]),
		Note:                 toStringSafe(data["note"]),
		RecruitingCount:      toNumber(data["recruiting_count"]),
		StartingSalaryFirst:  toNumber(data["starting_salary_first"]),
		StartingSalarySecond: toNumber(data["starting_salary_second"]),
		StartingSalaryThird:  toNumber(data["starting_salary_third"]),
		StartingSalaryFourth: toNumber(data["starting_salary_fourth"]),
		SalaryIncrease:       toNumber(data["salary_increase"]),
		Bonus:                toNumber(data["bonus"]),
		HolidayLeave:         toNumber(data["holiday_leave"]),
		Flex:                 data["flex"],
		EmployeeDormitory:    data["employee_dormitory"],
		ContractHousing:      data["contract_housing"],
		SubmissionObjectsID:  toNumberArray(data["submission_objects_id"]),
		PrefectureID:         toNumberArray(data["prefecture_id"]),
		WelfareBenefitsID:    toNumberArray(data["welfare_benefits_id"]),
		VariousAllowances:    processAllowances(data["various_allowances"]),
		UpdatedAt:            now.Format(time.RFC3339),
		CreatedAt:            now.Format(time.RFC3339),
	}

	if err := payloadValidator.Struct(payload); err != nil {
		return nil, errors.Wrap(err, "invalid requirement payload")
	}
	return payload, nil
}

// normalizeRequirementUpdate keeps unknown fields the form submitted and
// re-coerces only the reference sets, the allowance table and the update
// timestamp, matching what the backend revalidates on update.
func normalizeRequirementUpdate(data backend.Record, now time.Time) backend.Record {

	payload := data.Clone()
	payload["job_category_id"] = toNumber(data["job_category_id"])
	payload["submission_objects_id"] = toNumberArray(data["submission_objects_id"])
	payload["prefecture_id"] = toNumberArray(data["prefecture_id"])
	payload["welfare_benefits_id"] = toNumberArray(data["welfare_benefits_id"])
	payload["various_allowances"] = processAllowances(data["various_allowances"])
	payload["updated_at"] = now.Format(time.RFC3339)
	return payload
}
