//go:build wireinject
// +build wireinject

package app

import (
	"desta/internal/adapters/des_provider"
	"desta/internal/adapters/filesystem"
	"desta/internal/adapters/terminal"
	"desta/internal/core"
	"desta/internal/core/handler"
	"desta/internal/core/ta"
	"desta/internal/ports"

	"github.com/google/wire"
)

var Adapter = wire.NewSet(
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
	terminal.ProvideTerminalInput,
	wire.Bind(new(ports.TerminalInput), new(*terminal.TerminalInput)),
	des_provider.ProvideDesProvider,
	wire.Bind(new(ports.CryptoProvider), new(*des_provider.DesProvider)),
)

// CoreSet provides domain/core dependencies
var CoreSet = wire.NewSet(
	core.ProvideFileSystemConfigRepository,
	wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
	core.ProvideConfig,
	core.ProvideLoggerFactory,
	core.ProvideCipherClient,
)

// TrustedAppSet provides the in-process trusted application
var TrustedAppSet = wire.NewSet(
	ta.ProvideCommandDispatcher,
	ta.ProvideTrustedApplication,
)

// CommandHandlerSet combines all sets needed for command handlers
var CommandHandlerSet = wire.NewSet(
	Adapter,
	CoreSet,
	TrustedAppSet,
)

func InjectCipherCommandHandler() (handler.CipherCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideCipherCommandHandler,
	)
	return handler.CipherCommandHandler{}, nil
}

func InjectInfoCommandHandler() (handler.InfoCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideInfoCommandHandler,
	)
	return handler.InfoCommandHandler{}, nil
}

func InjectInitializeCommandHandler() (handler.InitializeCommandHandler, error) {
	wire.Build(
		Adapter,
		core.ProvideFileSystemConfigRepository,
		wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
		handler.ProvideInitializeCommandHandler,
	)
	return handler.InitializeCommandHandler{}, nil
}
