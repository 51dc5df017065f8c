package repositories

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/firestore"

	"worknestBack/internal/models"
)

const homesCollection = "homes"

type HomeRepository struct {
	Client   *firestore.Client
	ErrorLog *log.Logger
}

func (r *HomeRepository) Subscribe(ctx context.Context, fn func([]models.Home)) *ListingSubscription {
	query := r.Client.Collection(homesCollection).Query.OrderBy("postedDate", firestore.Desc)
	return watchCollection(ctx, r.ErrorLog, query, materializeHome, fn)
}

func materializeHome(doc *firestore.DocumentSnapshot) (models.Home, error) {
	var home models.Home
	if err := doc.DataTo(&home); err != nil {
		return models.Home{}, err
	}
	home.ID = doc.Ref.ID
	return home, nil
}

func (r *HomeRepository) CreateHome(ctx context.Context, home models.Home, identity models.Identity) (models.Home, error) {
	if identity.IsZero() {
		return models.Home{}, models.ErrUnauthenticated
	}

	home.PostedDate = time.Now().UTC()
	home.UserEmail = identity.Email
	home.UserID = identity.UID

	ref, _, err := r.Client.Collection(homesCollection).Add(ctx, home)
	if err != nil {
		return models.Home{}, err
	}

	home.ID = ref.ID
	return home, nil
}

func (r *HomeRepository) DeleteHome(ctx context.Context, id string, identity models.Identity) error {
	if identity.IsZero() {
		return models.ErrUnauthenticated
	}

	_, err := r.Client.Collection(homesCollection).Doc(id).Delete(ctx)
	return err
}
