package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/g-m-twostay/ds-utils/Trees/BSTree"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type (
	buildConfiguration struct {
		Root     *rootConfiguration
		Strategy string
		Orders   []string
		Balance  bool
		Remove   []int
	}

	report struct {
		Strategy string           `yaml:"strategy"`
		Size     uint             `yaml:"size"`
		Height   uint             `yaml:"height"`
		Balanced bool             `yaml:"balanced"`
		Min      *int             `yaml:"min,omitempty"`
		Max      *int             `yaml:"max,omitempty"`
		Skipped  []int            `yaml:"skipped,omitempty"`
		Orders   map[string][]int `yaml:"orders"`
	}

	tree = BSTree.BinarySearchTree[int, uint]
)

var orderNames = map[string]BSTree.Order{
	"pre":   BSTree.Preorder,
	"in":    BSTree.Inorder,
	"post":  BSTree.Postorder,
	"level": BSTree.Levelorder,
}

func newBuildCmd(rootConfig *rootConfiguration) *cobra.Command {
	config := &buildConfiguration{Root: rootConfig}
	cmd := &cobra.Command{
		Use:   "build [values...]",
		Short: "Puts integer values into a tree and prints a YAML report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, config, args)
		},
	}
	cmd.Flags().StringVar(&config.Strategy, "strategy", "avl", "balancing strategy: avl or bst")
	cmd.Flags().StringSliceVar(&config.Orders, "order", []string{"pre", "in", "post"}, "traversals to print: pre, in, post, level, all")
	cmd.Flags().BoolVar(&config.Balance, "balance", false, "rebuild the tree into a perfectly balanced one before reporting")
	cmd.Flags().IntSliceVar(&config.Remove, "remove", nil, "values to remove after building")
	return cmd
}

func parseStrategy(s string) (BSTree.Strategy, error) {
	switch strings.ToLower(s) {
	case "avl":
		return BSTree.AVL, nil
	case "bst", "unbalanced":
		return BSTree.Unbalanced, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", s)
	}
}

func parseValues(args []string) ([]int, error) {
	vs := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", a, err)
		}
		vs[i] = v
	}
	return vs, nil
}

// expandOrders checks the requested traversals; "all" stands for every one of them.
func expandOrders(names []string) ([]string, error) {
	var res []string
	for _, o := range names {
		if o == "all" {
			return []string{"pre", "in", "post", "level"}, nil
		}
		if _, ok := orderNames[o]; !ok {
			return nil, fmt.Errorf("unknown order %q", o)
		}
		res = append(res, o)
	}
	return res, nil
}

func runBuild(cmd *cobra.Command, config *buildConfiguration, args []string) error {
	log := config.Root.log
	strategy, err := parseStrategy(config.Strategy)
	if err != nil {
		return err
	}
	orders, err := expandOrders(config.Orders)
	if err != nil {
		return err
	}
	values, err := parseValues(args)
	if err != nil {
		return err
	}

	t := BSTree.New[int](strategy, uint(len(values)))
	r := &report{Strategy: strategy.String(), Orders: make(map[string][]int, len(config.Orders))}
	for _, v := range values {
		if err := t.Put(v); err != nil {
			var dup *BSTree.DuplicateValueError
			if !errors.As(err, &dup) {
				return err
			}
			log.Warn().Int("value", v).Msg("skipping duplicate value")
			r.Skipped = append(r.Skipped, v)
			continue
		}
		log.Debug().Int("value", v).Uint("height", t.TreeHeight()).Msg("put")
	}
	for _, v := range config.Remove {
		if _, err := t.Remove(v); err != nil {
			var inv *BSTree.InvalidNodeError
			if !errors.As(err, &inv) {
				return err
			}
			log.Warn().Int("value", v).Msg("cannot remove absent value")
			continue
		}
		log.Debug().Int("value", v).Msg("removed")
	}
	if config.Balance {
		t.Balance()
	}
	fillReport(r, t, orders)
	log.Info().Str("strategy", r.Strategy).Uint("size", r.Size).Uint("height", r.Height).Bool("balanced", r.Balanced).Msg("tree built")

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return enc.Close()
}

func fillReport(r *report, t *tree, orders []string) {
	r.Size, r.Height, r.Balanced = t.Size(), t.TreeHeight(), t.IsBalanced()
	if n, err := t.Min(); err == nil {
		v := n.Value()
		r.Min = &v
	}
	if n, err := t.Max(); err == nil {
		v := n.Value()
		r.Max = &v
	}
	for _, o := range orders {
		r.Orders[o] = t.Values(orderNames[o])
	}
}
