package api

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/einvoicedev/einvoice-mcp/einvoice/model"
)

type UserService interface {
	Info(ctx context.Context) (*model.UserInfo, error)
}

type user struct {
	client Client
}

func NewUserService(client Client) UserService {
	return &user{client: client}
}

// Info returns the account behind the configured API key together with its
// credit balances.
func (u *user) Info(ctx context.Context) (*model.UserInfo, error) {
	log.Debug("fetch user info")

	res := &model.UserInfo{}
	if err := u.client.GetJSON(ctx, "/api/v1/user", res); err != nil {
		return nil, err
	}
	return res, nil
}
