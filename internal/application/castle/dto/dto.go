package dto

import "github.com/castellan-host/castellan/internal/domain/castle"

type CastleEntryDTO struct {
	IGGID  string `json:"igg_id"`
	Name   string `json:"name"`
	Level  int    `json:"level"`
	Power  int64  `json:"power"`
	Troops int64  `json:"troops"`
}

// CastleListDTO carries the accessible castles plus the data source, so a
// placeholder response is never mistaken for an empty authorized set.
type CastleListDTO struct {
	Castles []*CastleEntryDTO `json:"castles"`
	Source  string            `json:"source"`
}

func ToCastleEntryDTO(e castle.Entry) *CastleEntryDTO {
	return &CastleEntryDTO{
		IGGID:  e.IGGID,
		Name:   e.Name,
		Level:  e.Level,
		Power:  e.Power,
		Troops: e.Troops,
	}
}

func ToCastleListDTO(result *castle.ResolutionResult) *CastleListDTO {
	if result == nil {
		return &CastleListDTO{Castles: []*CastleEntryDTO{}, Source: string(castle.SourceLive)}
	}

	entries := make([]*CastleEntryDTO, 0, len(result.Entries))
	for _, e := range result.Entries {
		entries = append(entries, ToCastleEntryDTO(e))
	}

	return &CastleListDTO{
		Castles: entries,
		Source:  string(result.Source),
	}
}
