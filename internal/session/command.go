package session

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/nikolayk812/dessert-cart/internal/domain"
)

type CommandKind string

const (
	CommandAdd       CommandKind = "add"
	CommandIncrement CommandKind = "inc"
	CommandDecrement CommandKind = "dec"
	CommandRemove    CommandKind = "remove"
	CommandConfirm   CommandKind = "confirm"
	CommandNewOrder  CommandKind = "new"
)

var ErrUnknownCommand = errors.New("unknown command")

// Command is one user interaction. ProductID is empty for confirm and new.
type Command struct {
	Kind      CommandKind
	ProductID domain.ProductID
}

// ParseCommand reads lines such as "add Waffle with Berries" or "confirm".
func ParseCommand(line string) (Command, error) {
	verb, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	kind := CommandKind(strings.ToLower(verb))

	switch kind {
	case CommandAdd, CommandIncrement, CommandDecrement, CommandRemove:
		id, err := domain.ParseProductID(arg)
		if err != nil {
			return Command{}, errors.Wrapf(err, "%s", kind)
		}
		return Command{Kind: kind, ProductID: id}, nil
	case CommandConfirm, CommandNewOrder:
		if strings.TrimSpace(arg) != "" {
			return Command{}, errors.Errorf("%s takes no argument", kind)
		}
		return Command{Kind: kind}, nil
	default:
		return Command{}, errors.Wrapf(ErrUnknownCommand, "%q", verb)
	}
}

// Execute dispatches a parsed command to the matching controller operation.
func (c *Controller) Execute(cmd Command) error {
	switch cmd.Kind {
	case CommandAdd:
		return c.AddToCart(cmd.ProductID)
	case CommandIncrement:
		return c.Increment(cmd.ProductID)
	case CommandDecrement:
		return c.Decrement(cmd.ProductID)
	case CommandRemove:
		return c.RemoveFromCart(cmd.ProductID)
	case CommandConfirm:
		_, err := c.ConfirmOrder()
		return err
	case CommandNewOrder:
		return c.StartNewOrder()
	default:
		return errors.Wrapf(ErrUnknownCommand, "%q", cmd.Kind)
	}
}
