package service

import (
	"context"
	"log"
	"time"
)

// FallbackGenerator tries Primary first and, on any error, Secondary
type FallbackGenerator struct {
	Primary   Generator
	Secondary Generator
}

// Generate calls Primary.Generate; on error it retries the same prompt on Secondary
func (f *FallbackGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	text, err := f.Primary.Generate(ctx, prompt)
	if err != nil && f.Secondary != nil && ctx.Err() == nil {
		log.Printf("[Fallback] primary generator failed, using secondary: %v", err)
		return f.Secondary.Generate(ctx, prompt)
	}
	return text, err
}

// TimeoutGenerator bounds every call of Next by Timeout
type TimeoutGenerator struct {
	Next    Generator
	Timeout time.Duration
}

func (t *TimeoutGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.Timeout)
	defer cancel()
	return t.Next.Generate(ctx, prompt)
}
