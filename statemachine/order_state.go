package statemachine

import (
	"errors"

	"github.com/blockchainsamuel0/calabarEats/models"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string // "chef", "customer", "admin"
}

// validTransitions is the authoritative state machine definition.
// The forward chain is pending → accepted → ready → completed; cancelled
// is reachable from every non-terminal state. No reverse edge exists.
var validTransitions = []Transition{
	// Chef drives the main line
	{From: models.StatusPending, To: models.StatusAccepted, Actor: "chef"},
	{From: models.StatusAccepted, To: models.StatusReady, Actor: "chef"},
	{From: models.StatusReady, To: models.StatusCompleted, Actor: "chef"},
	// Chef can cancel anywhere before completion
	{From: models.StatusPending, To: models.StatusCancelled, Actor: "chef"},
	{From: models.StatusAccepted, To: models.StatusCancelled, Actor: "chef"},
	{From: models.StatusReady, To: models.StatusCancelled, Actor: "chef"},
	// Customer can only back out before the chef accepts
	{From: models.StatusPending, To: models.StatusCancelled, Actor: "customer"},
	// Admin override is bound to the same graph
	{From: models.StatusPending, To: models.StatusAccepted, Actor: "admin"},
	{From: models.StatusAccepted, To: models.StatusReady, Actor: "admin"},
	{From: models.StatusReady, To: models.StatusCompleted, Actor: "admin"},
	{From: models.StatusPending, To: models.StatusCancelled, Actor: "admin"},
	{From: models.StatusAccepted, To: models.StatusCancelled, Actor: "admin"},
	{From: models.StatusReady, To: models.StatusCancelled, Actor: "admin"},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// IsTerminal reports whether no transition is defined out of a state
func IsTerminal(status models.OrderStatus) bool {
	return len(ValidTransitionsFrom(status)) == 0
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.OrderStatus, actor string) error {
	key := transitionKey{From: from, To: to, Actor: actor}
	if transitionMap[key] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " → " + string(to) +
			" is not allowed for actor '" + actor + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
