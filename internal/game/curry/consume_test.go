package curry

import (
	"testing"
	"time"

	"github.com/vovakirdan/curry-rush/internal/audio"
)

var testRules = Rules{
	MissPenalty:     time.Second,
	ObstaclePenalty: 2 * time.Second,
	PatternLen:      48,
}

func TestResolve(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	blocked := now.Add(500 * time.Millisecond)
	expired := now.Add(-time.Millisecond)

	tests := []struct {
		name         string
		item         *Item
		heat, gauge  int
		cooldown     time.Time
		want         Outcome
		wantKind     Kind
		wantCooldown time.Time
		wantHeat     int
		wantGauge    int
	}{
		{
			name: "water while blocked", item: &Item{Kind: KindCoolant},
			heat: 3, gauge: 10, cooldown: blocked,
			want: OutcomeDrink, wantKind: KindAir,
		},
		{
			name: "food while blocked", item: &Item{Kind: KindFood}, cooldown: blocked,
			want: OutcomeBlocked, wantKind: KindFood, wantCooldown: blocked,
		},
		{
			name: "nothing in reach", item: nil,
			want: OutcomeMiss, wantCooldown: now.Add(time.Second),
		},
		{
			name: "air", item: &Item{Kind: KindAir},
			want: OutcomeMiss, wantKind: KindAir, wantCooldown: now.Add(time.Second),
		},
		{
			name: "obstacle stays", item: &Item{Kind: KindObstacle},
			want: OutcomeObstacle, wantKind: KindObstacle, wantCooldown: now.Add(2 * time.Second),
		},
		{
			name: "food clears expired cooldown", item: &Item{Kind: KindFood}, cooldown: expired,
			want: OutcomeEat, wantKind: KindEmpty,
		},
		{
			name: "hazard raises heat", item: &Item{Kind: KindHazard}, heat: 1,
			want: OutcomeHazard, wantKind: KindEmpty, wantHeat: 2, wantGauge: 49,
		},
		{
			name: "hazard at cap", item: &Item{Kind: KindHazard}, heat: 4, gauge: 3,
			want: OutcomeHazard, wantKind: KindEmpty, wantHeat: 4, wantGauge: 49,
		},
		{
			name: "already eaten plate", item: &Item{Kind: KindEmpty}, heat: 2, gauge: 7,
			want: OutcomeNone, wantKind: KindEmpty, wantHeat: 2, wantGauge: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hz := Hazard{Heat: tt.heat, MaxHeat: 4, Gauge: tt.gauge, CooldownUntil: tt.cooldown}
			got := Resolve(now, tt.item, &hz, testRules)
			if got != tt.want {
				t.Fatalf("Resolve = %v, want %v", got, tt.want)
			}
			if tt.item != nil && tt.item.Kind != tt.wantKind {
				t.Errorf("item kind = %v, want %v", tt.item.Kind, tt.wantKind)
			}
			if !hz.CooldownUntil.Equal(tt.wantCooldown) {
				t.Errorf("cooldown = %v, want %v", hz.CooldownUntil, tt.wantCooldown)
			}
			if hz.Heat != tt.wantHeat || hz.Gauge != tt.wantGauge {
				t.Errorf("heat/gauge = %d/%d, want %d/%d", hz.Heat, hz.Gauge, tt.wantHeat, tt.wantGauge)
			}
		})
	}
}

func TestOutcomeCues(t *testing.T) {
	tests := []struct {
		out  Outcome
		cue  audio.Cue
		has  bool
		eats bool
	}{
		{OutcomeDrink, audio.CueWater, true, false},
		{OutcomeMiss, audio.CueMiss, true, false},
		{OutcomeObstacle, audio.CueObstacle, true, false},
		{OutcomeEat, audio.CueEat, true, true},
		{OutcomeHazard, audio.CueHazard, true, true},
		{OutcomeBlocked, 0, false, false},
		{OutcomeNone, 0, false, false},
	}
	for _, tt := range tests {
		cue, ok := tt.out.Cue()
		if ok != tt.has || (ok && cue != tt.cue) {
			t.Errorf("%v.Cue() = %v, %v", tt.out, cue, ok)
		}
		if tt.out.Consumed() != tt.eats {
			t.Errorf("%v.Consumed() = %v", tt.out, tt.out.Consumed())
		}
	}
}

func TestHazardRecycleResetsHeatAtZero(t *testing.T) {
	hz := NewHazard(4)
	hz.Raise(2)
	hz.Raise(2)
	if hz.Heat != 2 || hz.Gauge != 3 {
		t.Fatalf("heat/gauge = %d/%d", hz.Heat, hz.Gauge)
	}
	hz.Recycle()
	hz.Recycle()
	if hz.Heat != 2 {
		t.Errorf("heat dropped early: %d", hz.Heat)
	}
	hz.Recycle()
	if hz.Heat != 0 || hz.Gauge != 0 {
		t.Errorf("heat/gauge = %d/%d, want 0/0", hz.Heat, hz.Gauge)
	}
	hz.Recycle()
	if hz.Gauge != 0 {
		t.Errorf("gauge went negative: %d", hz.Gauge)
	}
}

func TestHazardExpire(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	hz := NewHazard(4)
	hz.Penalize(now, time.Second)

	hz.Expire(now.Add(time.Second))
	if !hz.Cooling() {
		t.Error("cooldown expired at its deadline, want strictly after")
	}
	if hz.Blocked(now.Add(time.Second)) {
		t.Error("blocked at the deadline")
	}
	hz.Expire(now.Add(time.Second + time.Millisecond))
	if hz.Cooling() {
		t.Error("cooldown still armed after deadline")
	}
}
