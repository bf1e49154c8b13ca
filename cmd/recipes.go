package main

import (
	"github.com/spf13/cobra"

	"recipebox/webclient/internal/model"
	"recipebox/webclient/internal/view"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Fetch and print all recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			if err := a.recipes.Refresh(cmd.Context()); err != nil {
				return err
			}
			return view.RenderRecipesTerminal(cmd.OutOrStdout(), a.recipes.Recipes())
		},
	}
}

func bindRecipeFlags(cmd *cobra.Command, in *model.RecipeInput) {
	cmd.Flags().StringVar(&in.Title, "title", "", "recipe title")
	cmd.Flags().StringVar(&in.ImageURL, "image-url", "", "image URL")
	cmd.Flags().StringVar(&in.Instructions, "instructions", "", "preparation instructions")
}

func newAddCmd(opts *rootOptions) *cobra.Command {
	var in model.RecipeInput
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a recipe and print the refreshed list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			if err := a.recipes.Create(cmd.Context(), in); err != nil {
				return err
			}
			return view.RenderRecipesTerminal(cmd.OutOrStdout(), a.recipes.Recipes())
		},
	}
	bindRecipeFlags(cmd, &in)
	return cmd
}

func newUpdateCmd(opts *rootOptions) *cobra.Command {
	var in model.RecipeInput
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a recipe's fields and print the refreshed list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			if err := a.recipes.Update(cmd.Context(), model.RecipeID(args[0]), in); err != nil {
				return err
			}
			return view.RenderRecipesTerminal(cmd.OutOrStdout(), a.recipes.Recipes())
		},
	}
	bindRecipeFlags(cmd, &in)
	return cmd
}

func newDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recipe and print the refreshed list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			if err := a.recipes.Delete(cmd.Context(), model.RecipeID(args[0])); err != nil {
				return err
			}
			return view.RenderRecipesTerminal(cmd.OutOrStdout(), a.recipes.Recipes())
		},
	}
}
