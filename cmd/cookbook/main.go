package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"cookbook-go/internal/app"
	"cookbook-go/internal/config"
	"cookbook-go/internal/model"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cookbook-go/internal/cookbook"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates an App. The caller must defer app.Close().
// operation identifies the CLI command being run (e.g. "AddRecipe", "PantryMix").
func newApp(operation string) (*app.App, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	a, err := app.NewApp(cfg, operation)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

// readPassphrase prompts for a passphrase without echo when stdin is a
// terminal, and falls back to a plain line read otherwise.
func readPassphrase(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading passphrase: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// parseIngredient splits a NAME[:AMOUNT[:UNIT]] flag value.
func parseIngredient(spec string) model.Ingredient {
	parts := strings.SplitN(spec, ":", 3)
	ing := model.Ingredient{Name: strings.TrimSpace(parts[0])}
	if len(parts) > 1 {
		ing.Amount = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		ing.Unit = strings.TrimSpace(parts[2])
	}
	return ing
}

// parseExpiry accepts either a date or a full RFC 3339 timestamp.
func parseExpiry(s string) (*time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid expiry %q (want YYYY-MM-DD or RFC 3339)", s)
}

var rootCmd = &cobra.Command{
	Use:   "cookbook",
	Short: "Personal recipe manager",
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg := config.NewConfig(defaults["base_dir"])

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Base Dir: %s\n", defaults["base_dir"])
		fmt.Printf("Store:    %s (%s)\n", cfg.Store.Type, cfg.Store.DataDir)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Base Dir: %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:  %s\n", cfg.LogDir)
		fmt.Printf("Store:    %s\n", cfg.Store.Type)
		return nil
	},
}

// seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate an empty collection with demo recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		minCount, _ := cmd.Flags().GetInt("min")

		a, err := newApp("Seed")
		if err != nil {
			return err
		}
		defer a.Close()

		count, err := a.Seed(minCount)
		if err != nil {
			return fmt.Errorf("seeding: %w", err)
		}
		if count == 0 {
			fmt.Println("Collection is not empty; nothing seeded.")
			return nil
		}
		fmt.Printf("Seeded %d recipe(s)\n", count)
		return nil
	},
}

// recipeFromFlags builds a recipe draft from the add/edit flag set.
func recipeFromFlags(cmd *cobra.Command, base model.Recipe) (model.Recipe, error) {
	r := base
	flags := cmd.Flags()

	if flags.Changed("title") {
		r.Title, _ = flags.GetString("title")
	}
	if flags.Changed("desc") {
		r.Description, _ = flags.GetString("desc")
	}
	if flags.Changed("category") {
		raw, _ := flags.GetString("category")
		c, ok := model.ParseCategory(raw)
		if !ok {
			return r, fmt.Errorf("unknown category %q", raw)
		}
		r.Category = c
	}
	if flags.Changed("tag") {
		tags, _ := flags.GetStringArray("tag")
		r.Tags = r.Tags[:0]
		for _, t := range tags {
			t = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(t)), " ", "-")
			if t != "" && !contains(r.Tags, t) {
				r.Tags = append(r.Tags, t)
			}
		}
	}
	if flags.Changed("ingredient") {
		specs, _ := flags.GetStringArray("ingredient")
		r.Ingredients = nil
		for _, spec := range specs {
			r.Ingredients = append(r.Ingredients, parseIngredient(spec))
		}
	}
	if flags.Changed("step") {
		steps, _ := flags.GetStringArray("step")
		r.Steps = nil
		for i, desc := range steps {
			r.Steps = append(r.Steps, model.Step{Order: i, Description: desc})
		}
	}
	if flags.Changed("prep") {
		r.PrepTime, _ = flags.GetInt("prep")
	}
	if flags.Changed("cook") {
		r.CookTime, _ = flags.GetInt("cook")
	}
	if flags.Changed("servings") {
		r.Servings, _ = flags.GetInt("servings")
	}
	if flags.Changed("expires") {
		raw, _ := flags.GetString("expires")
		if raw == "" {
			r.ExpiresAt = nil
		} else {
			expiry, err := parseExpiry(raw)
			if err != nil {
				return r, err
			}
			r.ExpiresAt = expiry
		}
	}

	return r, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// addRecipeFlags registers the shared add/edit flag set on cmd.
func addRecipeFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Recipe title")
	cmd.Flags().String("desc", "", "Recipe description")
	cmd.Flags().String("category", "other", "Category (breakfast, lunch, dinner, ...)")
	cmd.Flags().StringArray("tag", nil, "Tag (repeatable)")
	cmd.Flags().StringArray("ingredient", nil, "Ingredient as NAME[:AMOUNT[:UNIT]] (repeatable)")
	cmd.Flags().StringArray("step", nil, "Cooking step (repeatable, in order)")
	cmd.Flags().Int("prep", 0, "Preparation time in minutes")
	cmd.Flags().Int("cook", 0, "Cooking time in minutes")
	cmd.Flags().Int("servings", 2, "Number of servings")
	cmd.Flags().String("expires", "", "Seasonal expiry (YYYY-MM-DD); empty clears it")
}

// add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a recipe",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("AddRecipe")
		if err != nil {
			return err
		}
		defer a.Close()

		draft, err := recipeFromFlags(cmd, model.Recipe{})
		if err != nil {
			return err
		}

		r, err := a.Service().AddRecipe(draft)
		if err != nil {
			return fmt.Errorf("adding recipe: %w", err)
		}

		fmt.Printf("Added %q (%s)\n", r.Title, r.ID)
		return nil
	},
}

// edit command
var editCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("UpdateRecipe")
		if err != nil {
			return err
		}
		defer a.Close()

		existing, ok := a.Service().FindRecipe(args[0])
		if !ok {
			return fmt.Errorf("recipe not found: %s", args[0])
		}

		draft, err := recipeFromFlags(cmd, existing)
		if err != nil {
			return err
		}

		r, err := a.Service().UpdateRecipe(draft)
		if err != nil {
			return fmt.Errorf("updating recipe: %w", err)
		}

		fmt.Printf("Updated %q (%s)\n", r.Title, r.ID)
		return nil
	},
}

// list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Browse recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListRecipes")
		if err != nil {
			return err
		}
		defer a.Close()

		search, _ := cmd.Flags().GetString("search")
		categoryRaw, _ := cmd.Flags().GetString("category")
		tags, _ := cmd.Flags().GetStringArray("tag")
		favorites, _ := cmd.Flags().GetBool("favorites")
		sortRaw, _ := cmd.Flags().GetString("sort")

		filter := model.FilterState{
			Search:        search,
			Category:      model.CategoryAll,
			Tags:          tags,
			FavoritesOnly: favorites,
		}
		if categoryRaw != "" && categoryRaw != "all" {
			c, ok := model.ParseCategory(categoryRaw)
			if !ok {
				return fmt.Errorf("unknown category %q", categoryRaw)
			}
			filter.Category = c
		}
		sortBy, ok := model.ParseSortOption(sortRaw)
		if !ok {
			return fmt.Errorf("unknown sort option %q", sortRaw)
		}
		filter.SortBy = sortBy

		recipes := a.Service().ListRecipes(filter)
		if len(recipes) == 0 {
			fmt.Println("No recipes found.")
			return nil
		}

		for _, r := range recipes {
			fav := " "
			if r.IsFavorite {
				fav = "*"
			}
			fmt.Printf("%s %-36s  %-10s  cooked:%-3d  %s\n",
				fav, r.ID, r.Category, r.TimesCooked, r.Title)
		}
		return nil
	},
}

// show command
var showCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ShowRecipe")
		if err != nil {
			return err
		}
		defer a.Close()

		r, ok := a.Service().FindRecipe(args[0])
		if !ok {
			return fmt.Errorf("recipe not found: %s", args[0])
		}

		fmt.Printf("%s\n", r.Title)
		if r.Description != "" {
			fmt.Printf("%s\n", r.Description)
		}
		fmt.Printf("\nCategory: %s", r.Category)
		if len(r.Tags) > 0 {
			fmt.Printf("   Tags: %s", strings.Join(r.Tags, ", "))
		}
		fmt.Printf("\nPrep: %dm   Cook: %dm   Serves: %d   Cooked: %d times\n",
			r.PrepTime, r.CookTime, r.Servings, r.TimesCooked)
		if r.ExpiresAt != nil {
			fmt.Printf("Seasonal until %s\n", r.ExpiresAt.Format("2006-01-02"))
		}

		fmt.Println("\nIngredients:")
		for _, ing := range r.Ingredients {
			line := ing.Name
			if ing.Amount != "" {
				line = fmt.Sprintf("%s %s %s", ing.Amount, ing.Unit, ing.Name)
			}
			fmt.Printf("  - %s\n", strings.Join(strings.Fields(line), " "))
		}

		fmt.Println("\nSteps:")
		for _, st := range r.Steps {
			fmt.Printf("  %d. %s\n", st.Order+1, st.Description)
		}
		return nil
	},
}

// rm command
var rmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Delete a recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("DeleteRecipe")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().DeleteRecipe(args[0]); err != nil {
			return fmt.Errorf("deleting recipe: %w", err)
		}
		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}

// favorite command
var favoriteCmd = &cobra.Command{
	Use:   "favorite ID",
	Short: "Toggle a recipe's favorite flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ToggleFavorite")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().ToggleFavorite(args[0]); err != nil {
			return fmt.Errorf("toggling favorite: %w", err)
		}
		return nil
	},
}

// cooked command
var cookedCmd = &cobra.Command{
	Use:   "cooked ID",
	Short: "Record that a recipe was cooked",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("IncrementCooked")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().IncrementCooked(args[0]); err != nil {
			return fmt.Errorf("recording cook: %w", err)
		}
		return nil
	},
}

// pantry command
var pantryCmd = &cobra.Command{
	Use:   "pantry",
	Short: "Manage pantry ingredients",
}

var pantryAddCmd = &cobra.Command{
	Use:   "add NAME...",
	Short: "Add pantry ingredients",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("AddPantryItem")
		if err != nil {
			return err
		}
		defer a.Close()

		for _, name := range args {
			item, err := a.Service().AddPantryItem(name)
			if err != nil {
				return fmt.Errorf("adding pantry item: %w", err)
			}
			if item.ID != "" {
				fmt.Printf("%s  %s\n", item.ID, item.Name)
			}
		}
		return nil
	},
}

var pantryRmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Remove a pantry ingredient",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("RemovePantryItem")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().RemovePantryItem(args[0]); err != nil {
			return fmt.Errorf("removing pantry item: %w", err)
		}
		return nil
	},
}

var pantryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pantry ingredients",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListPantry")
		if err != nil {
			return err
		}
		defer a.Close()

		items := a.Service().Pantry()
		if len(items) == 0 {
			fmt.Println("The pantry is empty.")
			return nil
		}
		for _, it := range items {
			fmt.Printf("%s  %s\n", it.ID, it.Name)
		}
		return nil
	},
}

// mix command
var mixCmd = &cobra.Command{
	Use:   "mix [NAME...]",
	Short: "Find recipes matching ingredients (pantry mix)",
	Long:  "Ranks recipes by how many of their ingredients match the given names.\nWith no arguments, the stored pantry is used.",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("PantryMix")
		if err != nil {
			return err
		}
		defer a.Close()

		var matches []model.MatchResult
		if len(args) > 0 {
			matches = a.Service().PantryMix(args)
		} else {
			matches = a.Service().PantryMixFromPantry()
		}

		if len(matches) == 0 {
			fmt.Println("No matching recipes.")
			return nil
		}

		var exact, near []model.MatchResult
		for _, m := range matches {
			switch {
			case cookbook.IsExactMatch(m):
				exact = append(exact, m)
			case cookbook.IsCloseMatch(m):
				near = append(near, m)
			}
		}

		fmt.Printf("Found %d exact and %d close match(es).\n", len(exact), len(near))

		if len(exact) > 0 {
			fmt.Println("\nExact matches:")
			for _, m := range exact {
				fmt.Printf("  %s  %s\n", m.Recipe.ID, m.Recipe.Title)
			}
		}
		if len(near) > 0 {
			fmt.Println("\nClose matches:")
			for _, m := range near {
				fmt.Printf("  %s  %s (%.0f%% match, missing: %s)\n",
					m.Recipe.ID, m.Recipe.Title, m.MatchScore*100,
					strings.Join(m.MissingIngredients, ", "))
			}
		}
		return nil
	},
}

// suggest command
var suggestCmd = &cobra.Command{
	Use:   "suggest NAME...",
	Short: "Suggest a recipe name for a set of ingredients",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("SuggestName")
		if err != nil {
			return err
		}
		defer a.Close()

		name := a.Service().SuggestName(args)
		if name == "" {
			fmt.Println("No suggestion.")
			return nil
		}
		fmt.Println(name)
		return nil
	},
}

// keys command
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage export keys",
}

var keysInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate the export key pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("InitKeys")
		if err != nil {
			return err
		}
		defer a.Close()

		passphrase, err := readPassphrase("Passphrase for private key: ")
		if err != nil {
			return err
		}

		if err := a.InitKeys(passphrase); err != nil {
			return fmt.Errorf("initializing keys: %w", err)
		}
		fmt.Println("Export keys generated.")
		return nil
	},
}

// export command
var exportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Export recipes and pantry to an encrypted archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Export")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Export(args[0]); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		fmt.Printf("Exported to %s\n", args[0])
		return nil
	},
}

// import command
var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Replace recipes and pantry from an encrypted archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Import")
		if err != nil {
			return err
		}
		defer a.Close()

		passphrase, err := readPassphrase("Passphrase for private key: ")
		if err != nil {
			return err
		}

		if err := a.Import(args[0], passphrase); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		fmt.Printf("Imported from %s\n", args[0])
		return nil
	},
}

func init() {
	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	// pantry subcommands
	pantryCmd.AddCommand(pantryAddCmd)
	pantryCmd.AddCommand(pantryRmCmd)
	pantryCmd.AddCommand(pantryListCmd)

	// keys subcommands
	keysCmd.AddCommand(keysInitCmd)

	// root commands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().IntP("min", "n", 0, "Minimum number of seeded recipes (0 uses the configured default)")
	rootCmd.AddCommand(addCmd)
	addRecipeFlags(addCmd)
	rootCmd.AddCommand(editCmd)
	addRecipeFlags(editCmd)
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringP("search", "s", "", "Search title, description, ingredients, and tags")
	listCmd.Flags().StringP("category", "c", "all", "Filter by category")
	listCmd.Flags().StringArray("tag", nil, "Require tag (repeatable, all must match)")
	listCmd.Flags().BoolP("favorites", "f", false, "Favorites only")
	listCmd.Flags().String("sort", "newest", "Sort: newest, oldest, name, popular, favorites")
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(favoriteCmd)
	rootCmd.AddCommand(cookedCmd)
	rootCmd.AddCommand(pantryCmd)
	rootCmd.AddCommand(mixCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
