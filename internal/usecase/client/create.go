package client

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/slot-booker/internal/audit"
	domain "github.com/BruksfildServices01/slot-booker/internal/domain/reservation"
	"github.com/BruksfildServices01/slot-booker/internal/httperr"
	"github.com/BruksfildServices01/slot-booker/internal/models"
	"github.com/BruksfildServices01/slot-booker/internal/validators"
)

type CreateClientInput struct {
	Actor string
	Name  string `validate:"required,max=100"`
	Email string `validate:"required,email,max=255"`
}

type CreateClient struct {
	clients     domain.ClientRegistry
	audit       *audit.Dispatcher
	log         *logrus.Logger
	validate    *validator.Validate
	checkDomain func(email string) bool
	now         func() time.Time
}

// NewCreateClient enables the MX/A lookup of the email domain when checkDomain is true.
func NewCreateClient(
	clients domain.ClientRegistry,
	audit *audit.Dispatcher,
	log *logrus.Logger,
	checkDomain bool,
) *CreateClient {
	uc := &CreateClient{
		clients:  clients,
		audit:    audit,
		log:      log,
		validate: validator.New(),
		now:      time.Now,
	}
	if checkDomain {
		uc.checkDomain = validators.IsEmailDomainValid
	}
	return uc
}

func (uc *CreateClient) Execute(
	ctx context.Context,
	in CreateClientInput,
) (*models.Client, error) {

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if err := uc.validate.Struct(in); err != nil {
		return nil, httperr.Wrap(httperr.CodeInvalidRequest, err)
	}

	if uc.checkDomain != nil && !uc.checkDomain(in.Email) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRequest)
	}

	c := &models.Client{
		ID:        uuid.New(),
		Name:      in.Name,
		Email:     in.Email,
		CreatedAt: domain.Normalize(uc.now()),
	}

	if err := uc.clients.CreateClient(ctx, c); err != nil {
		return nil, err
	}

	uc.log.WithField("client_id", c.ID).Info("client created")

	uc.audit.Dispatch(audit.Event{
		Actor:    in.Actor,
		Action:   audit.ActionClientCreated,
		Entity:   audit.EntityClient,
		EntityID: &c.ID,
	})

	return c, nil
}
