package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aeoscan/aeoscan/internal/domain"
)

func TestResult_Ok(t *testing.T) {
	r := domain.Ok(42)

	assert.True(t, r.OK())
	assert.Equal(t, 42, r.Data())
	assert.Empty(t, r.Reason())
}

func TestResult_Fail(t *testing.T) {
	r := domain.Fail[int]("service unreachable")

	assert.False(t, r.OK())
	assert.Equal(t, 0, r.Data(), "failed result carries the zero value")
	assert.Equal(t, "service unreachable", r.Reason())
}

func TestResult_FailEmptyReason(t *testing.T) {
	r := domain.Fail[string]("")

	assert.False(t, r.OK())
	assert.Equal(t, "unknown failure", r.Reason())
}

func TestResult_FailStruct(t *testing.T) {
	r := domain.Fail[domain.PSIReport](domain.ReasonTimeout)

	assert.False(t, r.OK())
	assert.Equal(t, domain.PSIReport{}, r.Data())
	assert.Equal(t, "timeout", r.Reason())
}
