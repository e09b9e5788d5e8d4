package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/audit"
	domain "github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/domain/client"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/events"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/httperr"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/models"
)

type renameCall struct {
	table    string
	clientID uint
	fullName string
}

type fakeClientRepo struct {
	clients map[uint]*models.Client
	renames []renameCall
}

func (f *fakeClientRepo) GetClient(_ context.Context, id uint) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *c
	return &cp, nil
}

func (f *fakeClientRepo) UpdateClient(_ context.Context, c *models.Client) error {
	cp := *c
	f.clients[c.ID] = &cp
	return nil
}

func (f *fakeClientRepo) RenameInTransactions(_ context.Context, id uint, name string) error {
	f.renames = append(f.renames, renameCall{"transactions", id, name})
	return nil
}

func (f *fakeClientRepo) RenameInAppointments(_ context.Context, id uint, name string) error {
	f.renames = append(f.renames, renameCall{"appointments", id, name})
	return nil
}

func (f *fakeClientRepo) RenameInCreditSales(_ context.Context, id uint, name string) error {
	f.renames = append(f.renames, renameCall{"credit_sales", id, name})
	return nil
}

var _ domain.Repository = (*fakeClientRepo)(nil)

type nopSink struct{}

func (nopSink) Log(*uint, string, string, *uint, any) error { return nil }

func strPtr(s string) *string { return &s }

func newUC(repo domain.Repository) (*UpdateClient, <-chan events.Event) {
	bus := events.New()
	ch := bus.Subscribe(events.TopicClientUpdated)
	return NewUpdateClient(repo, audit.NewDispatcher(nopSink{}), bus), ch
}

func TestUpdateClientPropagatesRename(t *testing.T) {
	repo := &fakeClientRepo{clients: map[uint]*models.Client{
		4: {ID: 4, FullName: "João Silva", Whatsapp: "(11) 98765-4321"},
	}}
	uc, ch := newUC(repo)

	got, err := uc.Execute(context.Background(), UpdateClientInput{
		ClientID: 4,
		FullName: strPtr("João S. Prado"),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got.FullName != "João S. Prado" {
		t.Fatalf("fullname = %s", got.FullName)
	}

	if len(repo.renames) != 3 {
		t.Fatalf("expected rename in 3 ledgers, got %d", len(repo.renames))
	}
	seen := map[string]bool{}
	for _, r := range repo.renames {
		if r.clientID != 4 || r.fullName != "João S. Prado" {
			t.Errorf("bad rename call: %+v", r)
		}
		seen[r.table] = true
	}
	for _, table := range []string{"transactions", "appointments", "credit_sales"} {
		if !seen[table] {
			t.Errorf("missing rename in %s", table)
		}
	}

	select {
	case ev := <-ch:
		if ev.EntityID != 4 {
			t.Fatalf("event entity = %d", ev.EntityID)
		}
	case <-time.After(time.Second):
		t.Fatal("client.updated event not published")
	}
}

func TestUpdateClientSkipsCascadeWhenNameUnchanged(t *testing.T) {
	repo := &fakeClientRepo{clients: map[uint]*models.Client{
		4: {ID: 4, FullName: "João Silva"},
	}}
	uc, _ := newUC(repo)

	_, err := uc.Execute(context.Background(), UpdateClientInput{
		ClientID: 4,
		FullName: strPtr("João Silva"),
		Nickname: strPtr("Jão"),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(repo.renames) != 0 {
		t.Fatalf("cascade must not run for unchanged name: %+v", repo.renames)
	}
	if repo.clients[4].Nickname != "Jão" {
		t.Fatal("nickname not updated")
	}
}

func TestUpdateClientNormalizesContactData(t *testing.T) {
	repo := &fakeClientRepo{clients: map[uint]*models.Client{
		4: {ID: 4, FullName: "João Silva"},
	}}
	uc, _ := newUC(repo)

	got, err := uc.Execute(context.Background(), UpdateClientInput{
		ClientID: 4,
		Whatsapp: strPtr("11 98765 4321"),
		CPF:      strPtr("529.982.247-25"),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got.Whatsapp != "(11) 98765-4321" {
		t.Errorf("whatsapp = %s", got.Whatsapp)
	}
	if got.CPF != "529.982.247-25" {
		t.Errorf("cpf = %s", got.CPF)
	}

	_, err = uc.Execute(context.Background(), UpdateClientInput{
		ClientID: 4,
		Whatsapp: strPtr("123"),
	})
	if !httperr.IsBusiness(err, "invalid_phone") {
		t.Fatalf("expected invalid_phone, got %v", err)
	}
}

func TestUpdateClientNotFound(t *testing.T) {
	repo := &fakeClientRepo{clients: map[uint]*models.Client{}}
	uc, _ := newUC(repo)

	_, err := uc.Execute(context.Background(), UpdateClientInput{ClientID: 99})
	if !httperr.IsBusiness(err, "client_not_found") {
		t.Fatalf("expected client_not_found, got %v", err)
	}
}
