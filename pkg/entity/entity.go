package entity

import (
	"errors"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	IsAnonymous  bool
}

type Pet struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Type    string    `json:"type"`
	OwnerID uuid.UUID `json:"owner_id"`
}

type UrineAmount string

const (
	UrineLittle UrineAmount = "Little"
	UrineNormal UrineAmount = "Normal"
	UrineMuch   UrineAmount = "Much"
)

var UrineAmounts = []UrineAmount{UrineLittle, UrineNormal, UrineMuch}

// LogPayload is the free-form part of a daily log. Absent fields stay nil.
type LogPayload struct {
	SleepHours *int `json:"sleep_hours,omitempty"`
	DrinkML    *int `json:"drink_ml,omitempty"`
}

func (p LogPayload) Clone() LogPayload {
	return LogPayload{
		SleepHours: cloneInt(p.SleepHours),
		DrinkML:    cloneInt(p.DrinkML),
	}
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

type DailyHealthLog struct {
	ID            uuid.UUID   `json:"id"`
	CatID         uuid.UUID   `json:"cat_id"`
	LogDate       time.Time   `json:"log_date"`
	WeightKg      float64     `json:"weight_kg"`
	FoodText      string      `json:"food_text"`
	EatingLevel   string      `json:"eating_level"`
	DrinkingLevel string      `json:"drinking_level"`
	UrineAmount   UrineAmount `json:"urine_amount"`
	StoolType     string      `json:"stool_type"`
	EnergyLevel   string      `json:"energy_level"`
	Payload       LogPayload  `json:"payload"`
}

type RiskAssessment struct {
	ID          uuid.UUID `json:"id"`
	RiskLevel   string    `json:"risk_level"`
	SummaryText string    `json:"summary_text"`
	RiskCount   int       `json:"risk_count"`
	AssessedAt  time.Time `json:"assessed_at"`
}

type PreventionApproach struct {
	Title   string   `json:"title"`
	Intro   string   `json:"intro"`
	Bullets []string `json:"bullets"`
	Note    string   `json:"note"`
}

type RiskProfile struct {
	RiskLevel            int                  `json:"risk_level"`
	RiskLabel            string               `json:"risk_label"`
	PreventionApproaches []PreventionApproach `json:"prevention_approaches"`
	ApproachesList       []string             `json:"approaches_list"`
}

// Clone copies the profile so that no slice is shared with rp.
func (rp RiskProfile) Clone() RiskProfile {
	out := rp
	out.ApproachesList = slices.Clone(rp.ApproachesList)
	if rp.PreventionApproaches != nil {
		out.PreventionApproaches = make([]PreventionApproach, len(rp.PreventionApproaches))
		for i, pa := range rp.PreventionApproaches {
			pa.Bullets = slices.Clone(pa.Bullets)
			out.PreventionApproaches[i] = pa
		}
	}
	return out
}

// Elevated reports whether the gauge should be drawn in the warning colour.
func (rp RiskProfile) Elevated() bool {
	return rp.RiskLevel > 50
}

func DefaultRiskProfile() RiskProfile {
	return RiskProfile{
		RiskLevel: 60,
		RiskLabel: "Medium",
		PreventionApproaches: []PreventionApproach{
			{
				Title: "5 วิธีป้องกันป่วยโรคไตและนิ่วในแมว",
				Intro: "การเลี้ยงแมวให้สุขภาพดีและห่างไกลจากโรคไตและนิ่วนั้น สามารถทำได้ง่ายๆ หากเจ้าของใส่ใจดูแลอย่างใกล้ชิด",
				Bullets: []string{
					"กระตุ้นการดื่มน้ำ (แมวชอบน้ำพุ)",
					"เลือกอาหารที่มีคุณภาพ (โซเดียมต่ำ, โปรตีนคุณภาพดี)",
					"ทำความสะอาดกระบะทรายเป็นประจำ",
				},
				Note: "(เนื้อหาจำลองเพื่อการสาธิต ตามข้อมูลแมว เพศผู้, ทำหมันแล้ว, พันธุ์ผสม)",
			},
		},
		ApproachesList: []string{"Option data", "Option data 2", "Option data 3"},
	}
}

type TimeRange string

const (
	Range7Days   TimeRange = "7 DAY"
	Range30Days  TimeRange = "30 DAY"
	Range3Months TimeRange = "3 MONTH"
	Range6Months TimeRange = "6 MONTH"
	Range1Year   TimeRange = "1 YEAR"
)

var TimeRanges = []TimeRange{Range7Days, Range30Days, Range3Months, Range6Months, Range1Year}

var ErrUnknownTimeRange = errors.New("unknown time range")

func ParseTimeRange(s string) (TimeRange, error) {
	for _, r := range TimeRanges {
		if string(r) == s {
			return r, nil
		}
	}
	return "", ErrUnknownTimeRange
}

// LevelScore converts a stored ordinal level ("1".."5") to its number.
// Anything else counts as 0.
func LevelScore(level string) int {
	n, err := strconv.Atoi(level)
	if err != nil || n < 1 || n > 5 {
		return 0
	}
	return n
}

// WaterPercent is intake/goal as a percentage in [0, 100]. Zero goal gives 0.
func WaterPercent(intake, goal int) float64 {
	if goal <= 0 || intake <= 0 {
		return 0
	}
	p := float64(intake) / float64(goal) * 100
	if p > 100 {
		return 100
	}
	return p
}
