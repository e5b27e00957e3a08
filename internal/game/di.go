package game

import (
	"github.com/majlislab/jasoos/internal/catalog"
	"github.com/majlislab/jasoos/internal/chat"
	"github.com/majlislab/jasoos/internal/config"
	"github.com/majlislab/jasoos/internal/repository"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Manager, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo := do.MustInvoke[repository.Repository](i)
		chatClient := do.MustInvoke[chat.Client](i)
		return NewManager(cfg, repo, chatClient, catalog.Default()), nil
	})
}
