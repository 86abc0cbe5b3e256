// Package mocks holds gomock doubles for client ports.
//
// To regenerate after interface changes, run:
//
//	go generate ./internal/client/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	v := mocks.NewMockVerifier(ctrl)
//	v.EXPECT().Verify(gomock.Any(), "tok").Return(client.Valid{})
package mocks

// MockVerifier: Verify.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=verifier_mock.go github.com/WayleX/Beerter/internal/client/guard Verifier
