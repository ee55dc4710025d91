package cryptography

import (
	"math/big"

	"github.com/stretchr/testify/mock"
)

// MockPrimalityTester is a mock implementation of PrimalityTester
type MockPrimalityTester struct {
	mock.Mock
}

// IsProbablyPrime records the call and returns the configured answer
func (m *MockPrimalityTester) IsProbablyPrime(candidate *big.Int, rounds int) bool {
	args := m.Called(candidate, rounds)
	return args.Bool(0)
}
