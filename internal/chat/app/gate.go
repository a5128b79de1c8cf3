package app

import (
	"context"

	"gigconnect_client/internal/chat/repository"
	"gigconnect_client/pkg/token"
)

// SellerGateNotice shown instead of the composer for a reply-only viewer
const SellerGateNotice = "Only the buyer can start a new conversation thread."

// ComposerPolicy outcome of the point-in-time gating check
type ComposerPolicy struct {
	CanCompose bool
	Notice     string
	Exists     bool
	BookingID  string
}

// ComposerGate decides whether the composer renders for this view load.
//
// 純 UX hint：the server enforces the same rule on every send and its
// rejection wins over whatever this check concluded.
type ComposerGate struct {
	msgRepo repository.MessageRepository
}

// NewComposerGate create gate
func NewComposerGate(msgRepo repository.MessageRepository) *ComposerGate {
	return &ComposerGate{msgRepo: msgRepo}
}

// Check runs the conversation-existence query once. A seller looking at a
// thread with no prior message gets a disabled composer and the notice.
func (g *ComposerGate) Check(ctx context.Context, role token.RoleType, otherID string) (*ComposerPolicy, error) {
	res, err := g.msgRepo.ConversationExists(ctx, otherID)
	if err != nil {
		return nil, err
	}

	policy := &ComposerPolicy{
		CanCompose: true,
		Exists:     res.Exists,
		BookingID:  res.BookingID,
	}
	if !res.Exists && role == token.RoleSeller {
		policy.CanCompose = false
		policy.Notice = SellerGateNotice
	}
	return policy, nil
}
