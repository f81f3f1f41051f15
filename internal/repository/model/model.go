package model

import (
	"encoding/json"
	"fmt"
	"spin_wheel/internal/model"
)

// Record Секция в сохраненном виде: {"statements": ["", "", ""]}
type Record struct {
	Statements []string `json:"statements"`
}

// ToRecords Перевод секций в записи хранилища
func ToRecords(sections []model.Section) []Record {
	records := make([]Record, len(sections))
	for i, s := range sections {
		records[i] = Record{Statements: append([]string(nil), s.Statements[:]...)}
	}
	return records
}

// FromRecords Перевод записей в секции. Запись должна содержать ровно три утверждения,
// а записей не может быть больше capacity
func FromRecords(records []Record, capacity int) ([]model.Section, error) {
	if len(records) > capacity {
		return nil, fmt.Errorf("%w: %d sections stored, capacity is %d", model.ErrPersistence, len(records), capacity)
	}

	sections := make([]model.Section, len(records))
	for i, r := range records {
		if len(r.Statements) != model.StatementsPerSection {
			return nil, fmt.Errorf("%w: section %d has %d statements", model.ErrPersistence, i, len(r.Statements))
		}
		copy(sections[i].Statements[:], r.Statements)
	}
	return sections, nil
}

// Encode Сериализация секций в JSON массив
func Encode(sections []model.Section) ([]byte, error) {
	data, err := json.Marshal(ToRecords(sections))
	if err != nil {
		return nil, fmt.Errorf("%w: encode sections: %w", model.ErrPersistence, err)
	}
	return data, nil
}

// Decode Разбор JSON массива секций
func Decode(data []byte, capacity int) ([]model.Section, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decode sections: %w", model.ErrPersistence, err)
	}
	if records == nil {
		return nil, fmt.Errorf("%w: decode sections: not an array", model.ErrPersistence)
	}
	return FromRecords(records, capacity)
}
