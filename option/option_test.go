package option_test

import (
	"testing"

	"github.com/pouriyajamshidi/kindof/option"
	"github.com/stretchr/testify/assert"
)

type target struct {
	calls []string
}

func record(name string) option.Option[target] {
	return func(t *target) {
		t.calls = append(t.calls, name)
	}
}

func TestApply(t *testing.T) {
	var v target

	option.Apply(&v, record("first"), nil, record("second"))

	assert.Equal(t, []string{"first", "second"}, v.calls)
}

func TestApply_NoOptions(t *testing.T) {
	var v target

	option.Apply(&v)

	assert.Empty(t, v.calls)
}
