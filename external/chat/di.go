package chat

import (
	chatpkg "github.com/majlislab/jasoos/internal/chat"
	"github.com/majlislab/jasoos/internal/config"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (chatpkg.Client, error) {
		c := do.MustInvoke[*config.Config](i)
		return NewClient(c.DiscordToken), nil
	})
}
