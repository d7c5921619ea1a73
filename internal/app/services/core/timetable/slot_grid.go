package timetable

import (
	"errors"
	"strconv"
	"strings"
)

const (
	BatchCount      = 2
	DayOrderCycles  = 5
	PeriodsPerCycle = 10
)

var (
	ErrInvalidBatch    = errors.New("batch must be 1 or 2")
	ErrInvalidDayOrder = errors.New("day order cycle must be between 1 and 5")
	ErrInvalidPeriod   = errors.New("period index must be between 0 and 9")
)

// Batch is a cohort timetable variant.
type Batch int

const (
	BatchOne Batch = 1
	BatchTwo Batch = 2
)

func (b Batch) Valid() bool {
	return b == BatchOne || b == BatchTwo
}

func (b Batch) String() string {
	return strconv.Itoa(int(b))
}

// ParseBatch accepts "1" or "2", optionally surrounded by spaces.
func ParseBatch(value string) (Batch, error) {
	number, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, ErrInvalidBatch
	}
	batch := Batch(number)
	if !batch.Valid() {
		return 0, ErrInvalidBatch
	}
	return batch, nil
}

type period struct {
	start string
	end   string
}

// periodTimes is shared by both batches.
var periodTimes = [PeriodsPerCycle]period{
	{"08:00", "08:50"},
	{"08:50", "09:40"},
	{"09:45", "10:35"},
	{"10:40", "11:30"},
	{"11:35", "12:25"},
	{"12:30", "13:20"},
	{"13:25", "14:15"},
	{"14:20", "15:10"},
	{"15:10", "16:00"},
	{"16:00", "16:50"},
}

// slotGrid is indexed by [batch-1][cycle-1][period].
var slotGrid = [BatchCount][DayOrderCycles][PeriodsPerCycle]string{
	{
		{"A", "A", "F", "F", "G", "P6", "P7", "P8", "P9", "P10"},
		{"P11", "P12", "P13", "P14", "P15", "B", "B", "G", "G", "A"},
		{"C", "C", "A", "D", "B", "P26", "P27", "P28", "P29", "P30"},
		{"P31", "P32", "P33", "P34", "P35", "D", "D", "B", "E", "C"},
		{"E", "E", "C", "F", "D", "P46", "P47", "P48", "P49", "P50"},
	},
	{
		{"P1", "P2", "P3", "P4", "P5", "A", "A", "F", "F", "G"},
		{"B", "B", "G", "G", "A", "P16", "P17", "P18", "P19", "P20"},
		{"P21", "P22", "P23", "P24", "P25", "C", "C", "A", "D", "B"},
		{"D", "D", "B", "E", "C", "P36", "P37", "P38", "P39", "P40"},
		{"P41", "P42", "P43", "P44", "P45", "E", "E", "C", "F", "D"},
	},
}

// PeriodSlot is one (batch, cycle, period) cell of the grid bound to its clock range.
type PeriodSlot struct {
	Batch     Batch
	DayOrder  int
	Period    int
	SlotCode  string
	StartTime string
	EndTime   string
}

// LookupPeriod returns the slot code and clock range of one period.
func LookupPeriod(batch Batch, dayOrder, periodIndex int) (PeriodSlot, error) {
	if !batch.Valid() {
		return PeriodSlot{}, ErrInvalidBatch
	}
	if dayOrder < 1 || dayOrder > DayOrderCycles {
		return PeriodSlot{}, ErrInvalidDayOrder
	}
	if periodIndex < 0 || periodIndex >= PeriodsPerCycle {
		return PeriodSlot{}, ErrInvalidPeriod
	}
	times := periodTimes[periodIndex]
	return PeriodSlot{
		Batch:     batch,
		DayOrder:  dayOrder,
		Period:    periodIndex,
		SlotCode:  slotGrid[batch-1][dayOrder-1][periodIndex],
		StartTime: times.start,
		EndTime:   times.end,
	}, nil
}

// CyclePeriods returns the ten periods of one day-order cycle in clock order.
func CyclePeriods(batch Batch, dayOrder int) ([]PeriodSlot, error) {
	periods := make([]PeriodSlot, 0, PeriodsPerCycle)
	for i := 0; i < PeriodsPerCycle; i++ {
		slot, err := LookupPeriod(batch, dayOrder, i)
		if err != nil {
			return nil, err
		}
		periods = append(periods, slot)
	}
	return periods, nil
}
