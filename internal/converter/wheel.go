package converter

import (
	"fmt"
	dto "spin_wheel/internal/api/dto/wheel"
	"spin_wheel/internal/model"
	"strconv"
	"time"
)

func ToStatements(req dto.SaveRequest) (model.Statements, error) {
	var statements model.Statements
	if len(req.Statements) != model.StatementsPerSection {
		return statements, fmt.Errorf("%w: expected %d statements, got %d",
			model.ErrValidation, model.StatementsPerSection, len(req.Statements))
	}
	copy(statements[:], req.Statements)
	return statements, nil
}

func ToSectionResponse(section model.Section) dto.Section {
	return dto.Section{
		Statements: section.Statements[:],
		Filled:     section.Filled(),
	}
}

func ToSnapshotResponse(snap model.Snapshot) dto.SnapshotResponse {
	sections := make([]dto.Section, len(snap.Sections))
	for i, s := range snap.Sections {
		sections[i] = ToSectionResponse(s)
	}

	return dto.SnapshotResponse{
		Sections:       sections,
		Length:         snap.Length,
		Filled:         snap.Filled,
		CurrentSection: snap.CurrentSection,
		SelectedIndex:  snap.SelectedIndex,
		SpinState:      string(snap.SpinState),
		SpinID:         snap.SpinID,
		RotationRad:    snap.RotationRad,
	}
}

func ToProgressResponse(p model.Progress) dto.ProgressResponse {
	return dto.ProgressResponse{
		Filled:      p.Filled,
		Total:       p.Total,
		Percent:     p.Percent,
		SpinEnabled: p.SpinEnabled,
	}
}

func ToStatsResponse(stats model.WheelStats) dto.StatsResponse {
	selections := make(map[string]int, len(stats.Selections))
	for idx, n := range stats.Selections {
		selections[strconv.Itoa(idx)] = n
	}

	res := dto.StatsResponse{
		TotalSpins: stats.TotalSpins,
		Kept:       stats.Kept,
		Removed:    stats.Removed,
		Resets:     stats.Resets,
		Selections: selections,
	}
	if !stats.LastSpinAt.IsZero() {
		at := stats.LastSpinAt.UTC().Format(time.RFC3339)
		res.LastSpinAt = &at
	}
	return res
}

// ToSpinResponse nil означает, что спин не принят
func ToSpinResponse(res *model.SpinResult) dto.SpinResponse {
	if res == nil {
		return dto.SpinResponse{Accepted: false}
	}
	return dto.SpinResponse{
		Accepted:      true,
		SpinID:        res.SpinID,
		Index:         res.Index,
		RotationRad:   res.RotationRad,
		SettleDelayMs: res.SettleDelay.Milliseconds(),
	}
}

func ToRevealResponse(rev model.Reveal) dto.RevealResponse {
	return dto.RevealResponse{
		SpinID:     rev.SpinID,
		Index:      rev.Index,
		Statements: rev.Statements[:],
	}
}

func ToRemoveResponse(res model.RemoveResult) dto.RemoveResponse {
	return dto.RemoveResponse{
		RemovedIndex:   res.RemovedIndex,
		Length:         res.Length,
		CurrentSection: res.CurrentSection,
		PoolExhausted:  res.PoolExhausted,
	}
}

func ToEditResponse(target model.EditTarget) dto.EditResponse {
	return dto.EditResponse{
		Index:   target.Index,
		Section: ToSectionResponse(target.Section),
	}
}

func ToSaveResponse(res model.SaveResult) dto.SaveResponse {
	return dto.SaveResponse{
		SavedIndex:     res.SavedIndex,
		CurrentSection: res.CurrentSection,
		Filled:         res.Filled,
	}
}
