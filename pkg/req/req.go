package req

import (
	"encoding/json"
	"io"
)

// Decode Разбор JSON тела запроса в T. Неизвестные поля запрещены
func Decode[T any](body io.Reader) (T, error) {
	var payload T

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	err := dec.Decode(&payload)
	if err != nil {
		return payload, err
	}
	return payload, nil
}
