package client

import (
	"fmt"

	"github.com/MKhiriev/go-recipe-share/models"
)

// Commands is the sub-command table of the recipe-share CLI. The tag prefix
// of each description names who may call the endpoint.
type Commands struct {
	Version      VersionCmd      `command:"version" description:"(public)      print the server version"`
	Register     RegisterCmd     `command:"register" description:"(public)      create a Viewer account"`
	Login        LoginCmd        `command:"login" description:"(public)      log in and print the session token"`
	Me           MeCmd           `command:"me" description:"(user)        show the identity carried by the token"`
	ResetRequest ResetRequestCmd `command:"reset-request" description:"(public)      mail a password reset token"`
	ResetVerify  ResetVerifyCmd  `command:"reset-verify" description:"(public)      check a password reset token"`
	Reset        ResetCmd        `command:"reset" description:"(public)      set a new password with a reset token"`
	Recipes      RecipesCmd      `command:"recipes" description:"(user)        list recipes, optionally filtered"`
	Recipe       RecipeCmd       `command:"recipe" description:"(user)        show one recipe"`
	Create       CreateCmd       `command:"create" description:"(contributor) create a recipe"`
	Delete       DeleteCmd       `command:"delete" description:"(contributor) delete an owned recipe"`
	Rate         RateCmd         `command:"rate" description:"(viewer)      rate a recipe from 1 to 5"`
	Share        ShareCmd        `command:"share" description:"(user)        print share links of a recipe"`
	Users        UsersCmd        `command:"users" description:"(admin)       list users"`
	Role         RoleCmd         `command:"role" description:"(admin)       change the role of a user"`
}

func newCommands(a *App) *Commands {
	return &Commands{
		Version:      VersionCmd{app: a},
		Register:     RegisterCmd{app: a},
		Login:        LoginCmd{app: a},
		Me:           MeCmd{app: a},
		ResetRequest: ResetRequestCmd{app: a},
		ResetVerify:  ResetVerifyCmd{app: a},
		Reset:        ResetCmd{app: a},
		Recipes:      RecipesCmd{app: a},
		Recipe:       RecipeCmd{app: a},
		Create:       CreateCmd{app: a},
		Delete:       DeleteCmd{app: a},
		Rate:         RateCmd{app: a},
		Share:        ShareCmd{app: a},
		Users:        UsersCmd{app: a},
		Role:         RoleCmd{app: a},
	}
}

// idArg is a positional recipe or user id.
type idArg struct {
	ID int64 `positional-arg-name:"id"`
}

func (r idArg) validate() error {
	if r.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrUsage)
	}
	return nil
}

// ── auth ─────────────────────────────────────────────────────────────────────

type VersionCmd struct {
	app *App
}

func (cmd *VersionCmd) Execute(_ []string) error {
	version, err := cmd.app.api.Version(cmd.app.ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.app.out, version)
	return err
}

type RegisterCmd struct {
	Args struct {
		Name     string `positional-arg-name:"name"`
		Email    string `positional-arg-name:"email"`
		Password string `positional-arg-name:"password"`
	} `positional-args:"true" required:"true"`

	app *App
}

func (cmd *RegisterCmd) Execute(_ []string) error {
	user, err := cmd.app.api.Register(cmd.app.ctx, models.RegisterRequest{
		Name:     cmd.Args.Name,
		Email:    cmd.Args.Email,
		Password: cmd.Args.Password,
	})
	if err != nil {
		return err
	}
	return cmd.app.print(user)
}

// LoginCmd prints the issued token so it can be exported as RECIPES_TOKEN.
type LoginCmd struct {
	Args struct {
		Email    string `positional-arg-name:"email"`
		Password string `positional-arg-name:"password"`
	} `positional-args:"true" required:"true"`

	app *App
}

func (cmd *LoginCmd) Execute(_ []string) error {
	user, err := cmd.app.api.Login(cmd.app.ctx, models.LoginRequest{Email: cmd.Args.Email, Password: cmd.Args.Password})
	if err != nil {
		return err
	}
	cmd.app.logger.Info().Str("name", user.Name).Str("role", user.Role.String()).Msg("logged in")
	_, err = fmt.Fprintln(cmd.app.out, cmd.app.api.Token())
	return err
}

type MeCmd struct {
	app *App
}

func (cmd *MeCmd) Execute(_ []string) error {
	identity, err := cmd.app.api.Me(cmd.app.ctx)
	if err != nil {
		return err
	}
	return cmd.app.print(identity)
}

type ResetRequestCmd struct {
	Args struct {
		Email string `positional-arg-name:"email"`
	} `positional-args:"true" required:"true"`

	app *App
}

func (cmd *ResetRequestCmd) Execute(_ []string) error {
	if err := cmd.app.api.RequestPasswordReset(cmd.app.ctx, cmd.Args.Email); err != nil {
		return err
	}
	cmd.app.logger.Info().Msg("password reset email sent")
	return nil
}

type ResetVerifyCmd struct {
	Args struct {
		Token string `positional-arg-name:"token"`
	} `positional-args:"true" required:"true"`

	app *App
}

func (cmd *ResetVerifyCmd) Execute(_ []string) error {
	if err := cmd.app.api.VerifyResetToken(cmd.app.ctx, cmd.Args.Token); err != nil {
		return err
	}
	cmd.app.logger.Info().Msg("reset token is valid")
	return nil
}

type ResetCmd struct {
	Args struct {
		Token       string `positional-arg-name:"token"`
		NewPassword string `positional-arg-name:"new-password"`
	} `positional-args:"true" required:"true"`

	app *App
}

func (cmd *ResetCmd) Execute(_ []string) error {
	if err := cmd.app.api.ChangePassword(cmd.app.ctx, cmd.Args.Token, cmd.Args.NewPassword); err != nil {
		return err
	}
	cmd.app.logger.Info().Msg("password changed")
	return nil
}

// ── recipes ──────────────────────────────────────────────────────────────────

type RecipesCmd struct {
	Name        string `long:"name" description:"case-insensitive title substring"`
	Ingredients string `long:"ingredients" description:"case-insensitive ingredients substring"`
	Category    string `long:"category" description:"exact category"`

	app *App
}

func (cmd *RecipesCmd) Execute(_ []string) error {
	recipes, err := cmd.app.api.Recipes(cmd.app.ctx, models.RecipeFilter{
		Name:        cmd.Name,
		Ingredients: cmd.Ingredients,
		Category:    cmd.Category,
	})
	if err != nil {
		return err
	}
	return cmd.app.print(recipes)
}

type RecipeCmd struct {
	Args idArg `positional-args:"true" required:"true"`

	app *App
}

func (cmd *RecipeCmd) Execute(_ []string) error {
	if err := cmd.Args.validate(); err != nil {
		return err
	}
	recipe, err := cmd.app.api.Recipe(cmd.app.ctx, cmd.Args.ID)
	if err != nil {
		return err
	}
	return cmd.app.print(recipe)
}

type CreateCmd struct {
	Title       string `long:"title" required:"true" description:"recipe title"`
	Ingredients string `long:"ingredients" required:"true" description:"ingredients"`
	Steps       string `long:"steps" required:"true" description:"preparation steps"`
	Category    string `long:"category" required:"true" description:"category"`

	app *App
}

func (cmd *CreateCmd) Execute(_ []string) error {
	recipe, err := cmd.app.api.CreateRecipe(cmd.app.ctx, models.RecipeRequest{
		Title:       &cmd.Title,
		Ingredients: &cmd.Ingredients,
		Steps:       &cmd.Steps,
		Category:    &cmd.Category,
	})
	if err != nil {
		return err
	}
	return cmd.app.print(recipe)
}

type DeleteCmd struct {
	Args idArg `positional-args:"true" required:"true"`

	app *App
}

func (cmd *DeleteCmd) Execute(_ []string) error {
	if err := cmd.Args.validate(); err != nil {
		return err
	}
	return cmd.app.api.DeleteRecipe(cmd.app.ctx, cmd.Args.ID)
}

type RateCmd struct {
	Args struct {
		ID     int64 `positional-arg-name:"id"`
		Rating int   `positional-arg-name:"rating"`
	} `positional-args:"true" required:"true"`

	app *App
}

func (cmd *RateCmd) Execute(_ []string) error {
	if err := (idArg{ID: cmd.Args.ID}).validate(); err != nil {
		return err
	}

	average, err := cmd.app.api.RateRecipe(cmd.app.ctx, cmd.Args.ID, cmd.Args.Rating)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.app.out, "average rating: %.2f\n", average)
	return err
}

type ShareCmd struct {
	Args idArg `positional-args:"true" required:"true"`

	app *App
}

func (cmd *ShareCmd) Execute(_ []string) error {
	if err := cmd.Args.validate(); err != nil {
		return err
	}
	links, err := cmd.app.api.ShareLinks(cmd.app.ctx, cmd.Args.ID)
	if err != nil {
		return err
	}
	return cmd.app.print(links)
}

// ── users ────────────────────────────────────────────────────────────────────

type UsersCmd struct {
	app *App
}

func (cmd *UsersCmd) Execute(_ []string) error {
	users, err := cmd.app.api.Users(cmd.app.ctx)
	if err != nil {
		return err
	}
	return cmd.app.print(users)
}

type RoleCmd struct {
	Args struct {
		UserID int64  `positional-arg-name:"user-id"`
		Role   string `positional-arg-name:"Admin|Contributor|Viewer"`
	} `positional-args:"true" required:"true"`

	app *App
}

func (cmd *RoleCmd) Execute(_ []string) error {
	if err := (idArg{ID: cmd.Args.UserID}).validate(); err != nil {
		return err
	}
	role := models.Role(cmd.Args.Role)
	if !role.IsValid() {
		return fmt.Errorf("%w: unknown role %q", ErrUsage, cmd.Args.Role)
	}

	user, err := cmd.app.api.UpdateUserRole(cmd.app.ctx, cmd.Args.UserID, role)
	if err != nil {
		return err
	}
	return cmd.app.print(user)
}
