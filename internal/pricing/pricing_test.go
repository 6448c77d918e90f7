package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name      string
		dailyRate int64
		pickup    time.Time
		ret       time.Time
		want      Quote
	}{
		{
			name:      "three days",
			dailyRate: 150,
			pickup:    date(2024, time.June, 1),
			ret:       date(2024, time.June, 4),
			want:      Quote{Days: 3, Total: 450, Deposit: 135},
		},
		{
			name:      "single day",
			dailyRate: 200,
			pickup:    date(2024, time.June, 1),
			ret:       date(2024, time.June, 2),
			want:      Quote{Days: 1, Total: 200, Deposit: 60},
		},
		{
			name:      "deposit rounds up",
			dailyRate: 95,
			pickup:    date(2024, time.June, 1),
			ret:       date(2024, time.June, 2),
			want:      Quote{Days: 1, Total: 95, Deposit: 29}, // 28.5 rounds up
		},
		{
			name:      "partial day rounds up to a full day",
			dailyRate: 100,
			pickup:    time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			ret:       time.Date(2024, time.June, 2, 12, 0, 0, 0, time.UTC),
			want:      Quote{Days: 2, Total: 200, Deposit: 60},
		},
		{
			name:      "same day return is the sentinel",
			dailyRate: 150,
			pickup:    date(2024, time.June, 1),
			ret:       date(2024, time.June, 1),
			want:      Quote{},
		},
		{
			name:      "return before pickup is the sentinel",
			dailyRate: 150,
			pickup:    date(2024, time.June, 4),
			ret:       date(2024, time.June, 1),
			want:      Quote{},
		},
		{
			name:      "missing pickup is the sentinel",
			dailyRate: 150,
			ret:       date(2024, time.June, 4),
			want:      Quote{},
		},
		{
			name:      "missing return is the sentinel",
			dailyRate: 150,
			pickup:    date(2024, time.June, 1),
			want:      Quote{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.dailyRate, tt.pickup, tt.ret, 30)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculate_DepositNeverExceedsTotal(t *testing.T) {
	for rate := int64(1); rate <= 500; rate += 7 {
		for days := 1; days <= 30; days++ {
			pickup := date(2024, time.June, 1)
			ret := pickup.AddDate(0, 0, days)

			q := Calculate(rate, pickup, ret, 30)

			assert.Equal(t, days, q.Days)
			assert.Equal(t, int64(days)*rate, q.Total)
			assert.LessOrEqual(t, q.Deposit, q.Total)
			// deposit covers at least 30%
			assert.GreaterOrEqual(t, q.Deposit*100, q.Total*30)
			// rounded up by less than one whole unit
			assert.Less(t, (q.Deposit-1)*100, q.Total*30)
		}
	}
}
