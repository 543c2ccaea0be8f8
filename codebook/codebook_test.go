package codebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseCodebookTotal(t *testing.T) {
	seen := make(map[byte]bool)
	for i := 0; i < 256; i++ {
		code := byte(i)
		e := Lookup(code)
		assert.Equal(t, code, e.Code)
		assert.NotEmpty(t, e.Mnemonic)
		assert.False(t, seen[code], "duplicate code %d", code)
		seen[code] = true
	}
	assert.Len(t, seen, 256)
}

func TestKnownAssignments(t *testing.T) {
	assert.Equal(t, "ASSERT", Lookup(Assert).Mnemonic)
	assert.Equal(t, Pragmatic, Lookup(Assert).Category)
	assert.Equal(t, "CONFIDENCE", Lookup(Confidence).Mnemonic)
	assert.Equal(t, Meta, Lookup(Confidence).Category)
	assert.Equal(t, Reserved, Lookup(0xD0).Category)
	assert.Equal(t, "RESERVED", Lookup(0xD0).Mnemonic)
}

func TestStandardDomains(t *testing.T) {
	nav, ok := GetDomain(DomainNav)
	if assert.True(t, ok) {
		entry, ok := nav.Lookup(0x0000)
		assert.True(t, ok)
		assert.Equal(t, "POSITION_3D", entry.Mnemonic)

		entry, ok = nav.Lookup(0x0030)
		assert.True(t, ok)
		assert.Equal(t, "WAYPOINT", entry.Mnemonic)
	}

	for _, id := range []byte{DomainNav, DomainPercept, DomainManip, DomainComm, DomainDiag, DomainPlan, DomainSafety} {
		d, ok := GetDomain(id)
		assert.True(t, ok, "standard domain 0x%02X missing", id)
		assert.NotEmpty(t, d.entries)
	}

	_, ok = GetDomain(0x42)
	assert.False(t, ok)
}

func TestDomainTablesHaveUniqueCodes(t *testing.T) {
	for _, entries := range [][]DomainEntry{navEntries, perceptEntries, manipEntries, commEntries, diagEntries, planEntries, safetyEntries} {
		seen := make(map[uint16]bool)
		for _, e := range entries {
			assert.False(t, seen[e.Code], "duplicate domain code 0x%04X (%s)", e.Code, e.Mnemonic)
			seen[e.Code] = true
			assert.NotEmpty(t, e.Mnemonic)
		}
	}
}

func TestOperatorArity(t *testing.T) {
	assert.True(t, IsBinaryOp(Add))
	assert.True(t, IsUnaryOp(Not))
	assert.True(t, IsTernaryOp(IfThenElse))
	assert.False(t, IsBinaryOp(Not))
}
