package usecase

import (
	"context"

	"github.com/Jeevan-J/smart-contract-deployer/internal/domain"
	"github.com/Jeevan-J/smart-contract-deployer/internal/domain/models"
)

// ListTemplates lists the available contract templates.
type ListTemplates struct {
	store TemplateStore
}

func NewListTemplates(store TemplateStore) *ListTemplates {
	return &ListTemplates{store: store}
}

func (uc *ListTemplates) Run(ctx context.Context) ([]string, error) {
	return uc.store.List(ctx)
}

// GetTemplate returns a template's source code.
type GetTemplate struct {
	store TemplateStore
}

func NewGetTemplate(store TemplateStore) *GetTemplate {
	return &GetTemplate{store: store}
}

func (uc *GetTemplate) Run(ctx context.Context, name string) (*models.Template, error) {
	if err := domain.ValidateName(name); err != nil {
		return nil, err
	}
	return uc.store.Read(ctx, name)
}

// AddTemplate stores a new template. Adding over an existing name fails.
type AddTemplate struct {
	store TemplateStore
}

func NewAddTemplate(store TemplateStore) *AddTemplate {
	return &AddTemplate{store: store}
}

func (uc *AddTemplate) Run(ctx context.Context, name, source string) error {
	if err := domain.ValidateName(name); err != nil {
		return err
	}

	exists, err := uc.store.Exists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrTemplateExists
	}
	return uc.store.Write(ctx, name, source)
}

// RemoveTemplate deletes a template.
type RemoveTemplate struct {
	store TemplateStore
}

func NewRemoveTemplate(store TemplateStore) *RemoveTemplate {
	return &RemoveTemplate{store: store}
}

func (uc *RemoveTemplate) Run(ctx context.Context, name string) error {
	if err := domain.ValidateName(name); err != nil {
		return err
	}

	exists, err := uc.store.Exists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return &domain.TemplateNotFoundError{Template: name}
	}
	return uc.store.Remove(ctx, name)
}
