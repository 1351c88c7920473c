package web

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vbonduro/movecheck/internal/domain"
	"github.com/vbonduro/movecheck/internal/service"
	"github.com/vbonduro/movecheck/internal/wire"
)

type comparisonRequest struct {
	Entry *wire.Snapshot `json:"entry"`
	Exit  *wire.Snapshot `json:"exit" validate:"required"`
}

type estimateRequest struct {
	PropertyRef string           `json:"property_ref" validate:"required,max=100"`
	Entry       *wire.Snapshot   `json:"entry"`
	Exit        *wire.Snapshot   `json:"exit" validate:"required"`
	Deposit     *decimal.Decimal `json:"deposit" validate:"required,gte=0"`
}

func (r estimateRequest) toService() service.EstimateRequest {
	return service.EstimateRequest{
		PropertyRef: strings.TrimSpace(r.PropertyRef),
		Entry:       r.Entry.ToDomain(domain.RoleEntry),
		Exit:        *r.Exit.ToDomain(domain.RoleExit),
		Deposit:     *r.Deposit,
	}
}
