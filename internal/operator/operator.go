package operator

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/cashmind/internal/operator/actions"
	"github.com/carson-networks/cashmind/internal/storage"
)

// Tx is an open database transaction handed to one action.
type Tx interface {
	actions.Writer
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// BeginFunc opens a write transaction.
type BeginFunc func(ctx context.Context) (Tx, error)

// StorageBegin opens write transactions on s.
func StorageBegin(s *storage.Storage) BeginFunc {
	return func(ctx context.Context) (Tx, error) {
		writer, err := s.Write(ctx)
		if err != nil {
			return nil, err
		}
		return writer, nil
	}
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	begin  BeginFunc
	queue  chan ActionItem
	logger *logrus.Logger
}

func NewOperator(begin BeginFunc, queue chan ActionItem, logger *logrus.Logger) *Operator {
	return &Operator{
		begin:  begin,
		queue:  queue,
		logger: logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	writer, err := o.begin(item.ctx)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err = item.action.Perform(item.ctx, writer)
	if err != nil {
		if rbErr := writer.Rollback(item.ctx); rbErr != nil {
			o.logger.WithError(rbErr).Warn("Operator.processItem.Rollback")
		}
		item.response <- ActionItemResponse{err: err}
		return
	}

	if err = writer.Commit(item.ctx); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	item.response <- ActionItemResponse{}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
