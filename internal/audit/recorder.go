// Package audit appends stock transitions to the append-only log.
package audit

import (
	"go-inventory-tracker/internal/model"
	"go-inventory-tracker/internal/repository"

	"github.com/rs/zerolog"
)

// Recorder is a best-effort sink for quantity transitions. Record never
// propagates failure: the mutation that triggered the entry succeeds or
// fails on its own, and a lost log entry is reported to the operator
// log only.
type Recorder interface {
	Record(productID uint, productName string, oldQty, newQty int, reason, userName string)
}

type recorder struct {
	logs repository.StockLogRepository
	log  zerolog.Logger
}

func NewRecorder(logs repository.StockLogRepository, log zerolog.Logger) Recorder {
	return &recorder{logs: logs, log: log}
}

func (r *recorder) Record(productID uint, productName string, oldQty, newQty int, reason, userName string) {
	if userName == "" {
		userName = model.ActorSystem
	}

	entry := &model.StockLog{
		ProductID:   productID,
		ProductName: productName,
		OldQuantity: oldQty,
		NewQuantity: newQty,
		Reason:      reason,
		UserName:    userName,
	}

	if err := r.logs.Create(entry); err != nil {
		r.log.Error().
			Err(err).
			Uint("product_id", productID).
			Str("reason", reason).
			Msg("failed to record stock change")
	}
}
