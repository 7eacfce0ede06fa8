package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"roombook/internal/cascade"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <Campus|Area|RoomType|Room> <id>",
	Short: "Delete an entity and everything under it",
	Long: `Scans the backend for dependent areas, rooms and slots, shows the
counts, asks for confirmation, then deletes bottom-up (slots, rooms,
areas, target). The backend has no transactional cascade: if a step
fails mid-way, children already deleted stay deleted and the delete
must be re-run.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := cascade.ParseKind(args[0])
		if err != nil {
			return err
		}
		err = deleter.Run(context.Background(), args[1], kind, promptConfirmer{auto: deleteYes})
		if errors.Is(err, cascade.ErrAborted) {
			fmt.Println("Aborted.")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Println("Deleted.")
		return nil
	},
}

// promptConfirmer implements the confirmation contract on stdin. The
// wording escalates when the delete cascades into children.
type promptConfirmer struct {
	auto bool
}

func (p promptConfirmer) ConfirmDelete(plan *cascade.Plan) (bool, error) {
	if plan.Cascading() {
		fmt.Printf("WARNING: this %s has %d dependent records (%d areas, %d rooms, %d slots).\n",
			plan.Kind, plan.ChildCount(), areaChildren(plan), len(plan.RoomIDs), len(plan.SlotIDs))
		fmt.Print("All of them will be deleted. Delete everything? [y/N] ")
	} else {
		fmt.Printf("Delete %s %s? [y/N] ", plan.Kind, plan.TargetID)
	}
	if p.auto {
		fmt.Println("y (--yes)")
		return true, nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// areaChildren counts areas as children only for a Campus target; for an
// Area target the plan's single area entry is the target itself.
func areaChildren(plan *cascade.Plan) int {
	if plan.Kind == cascade.KindCampus {
		return len(plan.AreaIDs)
	}
	return 0
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
}
