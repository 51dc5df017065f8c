package repositories

import (
	"context"
	"errors"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// ListingSubscription is a handle on a live collection feed. Stop detaches the
// upstream listener and waits for the delivery goroutine to exit, so no
// callbacks arrive after it returns.
type ListingSubscription struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func (s *ListingSubscription) Stop() {
	s.cancel()
	<-s.done
}

// watchCollection subscribes to query and invokes fn with the fully
// rematerialized result set on every upstream emission. Callers always receive
// whole snapshots, never deltas; replacing or diffing is their decision.
func watchCollection[T any](ctx context.Context, errorLog *log.Logger, query firestore.Query,
	materialize func(*firestore.DocumentSnapshot) (T, error), fn func([]T)) *ListingSubscription {

	ctx, cancel := context.WithCancel(ctx)
	snapshots := query.Snapshots(ctx)

	next := func() ([]T, error) {
		snap, err := snapshots.Next()
		if err != nil {
			return nil, err
		}

		records := make([]T, 0, snap.Size)
		docs := snap.Documents
		for {
			doc, err := docs.Next()
			if errors.Is(err, iterator.Done) {
				break
			}
			if err != nil {
				errorLog.Printf("reading snapshot document: %v", err)
				break
			}

			record, err := materialize(doc)
			if err != nil {
				// A malformed document must not poison the whole feed.
				errorLog.Printf("decoding document %s: %v", doc.Ref.ID, err)
				continue
			}
			records = append(records, record)
		}
		return records, nil
	}

	return deliverSnapshots(ctx, cancel, errorLog, next, snapshots.Stop, fn)
}

// deliverSnapshots pumps emissions from next into fn until the context is
// cancelled or next fails. cleanup runs before the done channel closes, so
// Stop does not return while the upstream listener is still attached.
func deliverSnapshots[T any](ctx context.Context, cancel context.CancelFunc, errorLog *log.Logger,
	next func() ([]T, error), cleanup func(), fn func([]T)) *ListingSubscription {

	sub := &ListingSubscription{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(sub.done)
		defer cleanup()

		for {
			records, err := next()
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				errorLog.Printf("listing subscription ended: %v", err)
				return
			}
			fn(records)
		}
	}()

	return sub
}
