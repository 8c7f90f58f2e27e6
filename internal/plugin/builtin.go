package plugin

func init() {
	Register("babel", func(options map[string]any) (Plugin, error) {
		return &babelPlugin{}, nil
	})
	Register("typescript", func(options map[string]any) (Plugin, error) {
		return &typescriptPlugin{}, nil
	})
	Register("eslint", func(options map[string]any) (Plugin, error) {
		return &eslintPlugin{}, nil
	})
	Register("dev-server", func(options map[string]any) (Plugin, error) {
		return &devServerPlugin{}, nil
	})
}

// babelPlugin wires Babel transpilation: toolchain dev-dependencies at
// construction time and a module rule on every run.
type babelPlugin struct{}

func (p *babelPlugin) Name() string { return "babel" }

func (p *babelPlugin) OnConstruct(ctx *ConstructContext) error {
	ctx.MergePackageConfig(map[string]any{
		"devDependencies": map[string]any{
			"@babel/core":       "^7.18.0",
			"@babel/preset-env": "^7.18.0",
			"babel-loader":      "^8.2.0",
		},
	})
	return nil
}

func (p *babelPlugin) OnRun(ctx *RunContext) error {
	ctx.MergeConfig(map[string]any{
		"module": map[string]any{
			"rules": []any{
				map[string]any{
					"test":    `\.m?jsx?$`,
					"exclude": "node_modules",
					"use":     "babel-loader",
				},
			},
		},
	})
	return nil
}

// typescriptPlugin wires TypeScript support.
type typescriptPlugin struct{}

func (p *typescriptPlugin) Name() string { return "typescript" }

func (p *typescriptPlugin) OnConstruct(ctx *ConstructContext) error {
	ctx.MergePackageConfig(map[string]any{
		"devDependencies": map[string]any{
			"typescript": "^4.7.0",
			"ts-loader":  "^9.3.0",
		},
	})
	return nil
}

func (p *typescriptPlugin) OnRun(ctx *RunContext) error {
	ctx.MergeConfig(map[string]any{
		"resolve": map[string]any{
			"extensions": []any{".ts", ".tsx", ".js"},
		},
	})
	return nil
}

// eslintPlugin wires linting. The ruleset is chosen interactively at
// construction time; the rules themselves belong to the chosen shareable
// config, not to this tool.
type eslintPlugin struct{}

func (p *eslintPlugin) Name() string { return "eslint" }

// eslintConfigPackages maps the ruleset choice to its shareable config package.
var eslintConfigPackages = map[string]string{
	"recommended": "eslint-config-recommended",
	"airbnb":      "eslint-config-airbnb-base",
	"standard":    "eslint-config-standard",
}

func (p *eslintPlugin) OnConstruct(ctx *ConstructContext) error {
	choice, err := ctx.Inquire(Question{
		Key:     "eslint.config",
		Prompt:  "Pick an ESLint ruleset:",
		Choices: []string{"recommended", "airbnb", "standard"},
		Default: "recommended",
	})
	if err != nil {
		return err
	}

	devDeps := map[string]any{"eslint": "^8.18.0"}
	if pkg, ok := eslintConfigPackages[choice]; ok {
		devDeps[pkg] = "latest"
	}

	ctx.MergePackageConfig(map[string]any{
		"scripts": map[string]any{
			"lint": "eslint --ext .js,.ts src",
		},
		"devDependencies": devDeps,
	})
	return nil
}

// devServerPlugin contributes dev-server defaults to the bundler
// configuration. User-supplied host/port settings still take precedence
// when the final configuration is resolved.
type devServerPlugin struct{}

func (p *devServerPlugin) Name() string { return "dev-server" }

func (p *devServerPlugin) OnRun(ctx *RunContext) error {
	if ctx.Mode() != ModeServe {
		return nil
	}
	ctx.MergeConfig(map[string]any{
		"devServer": map[string]any{
			"host": "localhost",
			"port": 8080,
			"hot":  true,
		},
	})
	return nil
}
