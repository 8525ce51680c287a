package main

var TheGraphicsContext struct {
	AntiAlias bool
}

func init() {
	ctx := &TheGraphicsContext

	ctx.AntiAlias = true
}

func IsAntiAliasOn() bool {
	return TheGraphicsContext.AntiAlias
}

func ToggleAntiAlias() {
	ctx := &TheGraphicsContext

	ctx.AntiAlias = !ctx.AntiAlias
}
