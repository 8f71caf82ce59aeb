package swcanvas

// ContextOption configures a Context during creation.
// Use functional options to customize Context behavior.
//
// Example:
//
//	// Default context with its own surface
//	dc, err := swcanvas.NewContext(800, 600)
//
//	// Context drawing onto an existing surface
//	dc, err := swcanvas.NewContext(0, 0, swcanvas.WithSurface(surface))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	surface  *Surface
	fillRule FillRule
	stroke   Stroke
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		fillRule: FillRuleNonZero,
		stroke:   DefaultStroke(),
	}
}

// WithSurface sets the surface the Context draws onto. The context
// takes its dimensions from the surface, overriding the width and
// height passed to NewContext.
//
// Example:
//
//	surface, _ := swcanvas.NewSurface(800, 600)
//	dc, err := swcanvas.NewContext(0, 0, swcanvas.WithSurface(surface))
func WithSurface(s *Surface) ContextOption {
	return func(o *contextOptions) {
		o.surface = s
	}
}

// WithFillRule sets the initial fill rule for the Context.
func WithFillRule(rule FillRule) ContextOption {
	return func(o *contextOptions) {
		o.fillRule = rule
	}
}

// WithStroke sets the initial stroke style for the Context.
//
// Example:
//
//	dc, err := swcanvas.NewContext(800, 600,
//	    swcanvas.WithStroke(swcanvas.DefaultStroke().WithWidth(2).WithCap(swcanvas.LineCapRound)))
func WithStroke(stroke Stroke) ContextOption {
	return func(o *contextOptions) {
		o.stroke = stroke
	}
}
