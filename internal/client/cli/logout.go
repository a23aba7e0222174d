package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogout(ctx context.Context) error {
	c.io.Println("=== Logout ===")

	if err := c.authService.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	// Снапшоты принадлежат аккаунту - следующий логин не должен их видеть
	if err := c.snapshots.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear local snapshots: %w", err)
	}

	c.io.Println("✓ Logout successful!")
	c.io.Println("Your local session and cached project data have been deleted.")

	return nil
}
