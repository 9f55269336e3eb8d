package background

import (
	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"
)

// TaskSender enqueues a job. *machinery.Server is one.
type TaskSender interface {
	SendTask(*tasks.Signature) (*result.AsyncResult, error)
}

// EnqueueResolveCardLocation asks a worker to label the card with a place name
func EnqueueResolveCardLocation(sender TaskSender, cardID string) error {
	_, err := sender.SendTask(&tasks.Signature{
		Name: TaskResolveCardLocation,
		Args: []tasks.Arg{
			{Type: "string", Value: cardID},
		},
	})
	return err
}

// EnqueueCloseExpiredCards asks a worker to sweep expired urgent cards
func EnqueueCloseExpiredCards(sender TaskSender) error {
	_, err := sender.SendTask(&tasks.Signature{
		Name: TaskCloseExpiredCards,
	})
	return err
}
