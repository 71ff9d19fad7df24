package dashboard

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const tipsPerDay = 3

//go:embed tips.csv
var defaultTipsCsv string

// TipsManager holds a fixed set of tips for every day of the week.
type TipsManager struct {
	byWeekday [7][]string
}

func NewDefaultTipsManager() (*TipsManager, error) {
	return NewTipsManager(csv.NewReader(strings.NewReader(defaultTipsCsv)))
}

// NewTipsManager reads WEEKDAY;TIP records, weekday 0 being Sunday.
// Every weekday must end up with exactly three tips.
func NewTipsManager(tipsCsvReader *csv.Reader) (*TipsManager, error) {
	tm := &TipsManager{}

	tipsCsvReader.Comma = ';'
	for {
		record, err := tipsCsvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if len(record) != 2 {
			return nil, fmt.Errorf("record [%s] does not have 2 elements", record)
		}

		weekday, err := strconv.Atoi(record[0])
		if err != nil || weekday < 0 || weekday > 6 {
			return nil, fmt.Errorf("record [%s]: invalid weekday", record)
		}
		tm.byWeekday[weekday] = append(tm.byWeekday[weekday], record[1])
	}

	for weekday, tips := range tm.byWeekday {
		if len(tips) != tipsPerDay {
			return nil, fmt.Errorf("%s has %d tips, expected %d", time.Weekday(weekday), len(tips), tipsPerDay)
		}
	}

	log.Debugf("daily tips loaded for %d weekdays", len(tm.byWeekday))

	return tm, nil
}

// TipsFor returns the tips of the weekday of day, in day's location.
func (tm *TipsManager) TipsFor(day time.Time) []string {
	tips := tm.byWeekday[day.Weekday()]
	out := make([]string, len(tips))
	copy(out, tips)
	return out
}
