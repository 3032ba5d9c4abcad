package services

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput 入力値が不正
var ErrInvalidInput = errors.New("入力値が不正です")

// required 前後の空白を除いた値を返す。空の場合はErrInvalidInput
func required(value, label string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %sは必須です", ErrInvalidInput, label)
	}
	return value, nil
}
