package main

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInvoices(t *testing.T) {
	users := map[string]int{}
	for i, name := range cashiers {
		users[name] = i + 1
	}
	today := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	invoices := buildInvoices(users, today, rand.New(rand.NewPCG(42, 1)))

	minCount := seedDays * len(cashiers) * 5
	maxCount := seedDays * len(cashiers) * 20
	require.GreaterOrEqual(t, len(invoices), minCount)
	require.LessOrEqual(t, len(invoices), maxCount)

	numbers := make(map[string]struct{}, len(invoices))
	for _, inv := range invoices {
		assert.Len(t, inv.No, invoiceNoLength)
		numbers[inv.No] = struct{}{}

		assert.True(t, inv.Cost.LessThan(inv.TotalVI), "custo deve ser menor que o total: %s", inv.No)
		assert.True(t, inv.Vat.IsPositive())
		assert.True(t, inv.Date.Before(today))
		assert.False(t, inv.Date.Before(today.AddDate(0, 0, -seedDays)))
		assert.Contains(t, periods, inv.Period)
		assert.Contains(t, registers, inv.Register)
		assert.NotZero(t, inv.UserID)
	}
	assert.Len(t, numbers, len(invoices))
}

func TestBuildInvoices_SameSeedSameShape(t *testing.T) {
	users := map[string]int{"ana.souza": 1, "bruno.lima": 2, "carla.mendes": 3, "diego.rocha": 4}
	today := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	first := buildInvoices(users, today, rand.New(rand.NewPCG(7, 7)))
	second := buildInvoices(users, today, rand.New(rand.NewPCG(7, 7)))

	require.Len(t, second, len(first))
	for i := range first {
		assert.True(t, first[i].TotalVI.Equal(second[i].TotalVI))
		assert.True(t, first[i].Cost.Equal(second[i].Cost))
		assert.Equal(t, first[i].Period, second[i].Period)
	}
}
