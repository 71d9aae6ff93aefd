package cli

import (
	"context"
	"errors"
	"fmt"

	"smapp/internal/models"
	"smapp/internal/service"
)

const (
	itemCreateAccount = "Create a new account"
	itemExit          = "Exit"
	itemOwnPosts      = "Show your posts"
	itemOtherPosts    = "Show posts from another user"
	itemAddPost       = "Add post"
	itemLogout        = "Logout"
	itemLike          = "Like a post"
	itemComment       = "Comment on a post"
	itemReturnHome    = "Return to home"
)

func (c *CLI) login(ctx context.Context) (Screen, error) {
	c.p.title("Login Screen")
	names, err := c.ctrl.ListUserNames(ctx)
	if err != nil {
		return "", err
	}

	items := append(append([]string{}, names...), itemCreateAccount, itemExit)
	choice, err := c.p.menu("Select user or create a new account", items, false)
	if err != nil {
		return "", err
	}

	switch choice {
	case len(names):
		return ScreenCreateAccount, nil
	case len(names) + 1:
		return ScreenExit, nil
	}

	found, err := c.ctrl.Login(ctx, c.session, names[choice])
	if err != nil {
		return "", err
	}
	if !found {
		c.p.printf("No user named %q.\n", names[choice])
		return ScreenLogin, nil
	}
	return ScreenHome, nil
}

func (c *CLI) createAccount(ctx context.Context) (Screen, error) {
	c.p.title("Create Account Screen")
	c.p.printf("Enter Account Details\n")

	name, err := c.p.required("Username: ")
	if err != nil {
		return "", err
	}
	age, err := c.p.optionalInt("Age: ", models.MinAge, models.MaxAge)
	if err != nil {
		return "", err
	}

	genders := make([]string, len(models.Genders))
	for i, g := range models.Genders {
		genders[i] = string(g)
	}
	choice, err := c.p.menu("Gender (blank to skip):", genders, true)
	if err != nil {
		return "", err
	}
	gender := ""
	if choice >= 0 {
		gender = genders[choice]
	}

	nationality, err := c.p.line("Nationality: ")
	if err != nil {
		return "", err
	}

	_, err = c.ctrl.CreateAccount(ctx, c.session, service.CreateAccountInput{
		Name:        name,
		Age:         age,
		Gender:      gender,
		Nationality: nationality,
	})
	if errors.Is(err, models.ErrDuplicateName) || errors.Is(err, models.ErrValidation) {
		c.p.printf("Error: %s\n", err.Error())
		return ScreenCreateAccount, nil
	}
	if err != nil {
		return "", err
	}
	return ScreenHome, nil
}

func (c *CLI) home(ctx context.Context) (Screen, error) {
	user, err := c.ctrl.CurrentUserInfo(ctx, c.session)
	if err != nil {
		return "", err
	}

	c.p.title(user.Name + " Home Screen")
	c.p.printf("Name: %s\n", user.Name)
	c.p.printf("Age: %s\n", orDash(user.Age))
	c.p.printf("Gender: %s\n", orDash(user.Gender))
	c.p.printf("Nationality: %s\n\n", orDash(user.Nationality))

	items := []string{itemOwnPosts, itemOtherPosts, itemAddPost, itemLogout, itemExit}
	choice, err := c.p.menu("Select an action", items, false)
	if err != nil {
		return "", err
	}

	switch items[choice] {
	case itemOwnPosts:
		if err := c.ctrl.SetViewingUser(ctx, c.session, user.Name); err != nil {
			return "", err
		}
		return ScreenShowPosts, nil
	case itemOtherPosts:
		return ScreenChooseUser, nil
	case itemAddPost:
		return ScreenWritePost, nil
	case itemLogout:
		c.ctrl.Logout(c.session)
		return ScreenLogin, nil
	default:
		return ScreenExit, nil
	}
}

func (c *CLI) chooseUser(ctx context.Context) (Screen, error) {
	names, err := c.ctrl.ListUserNames(ctx)
	if err != nil {
		return "", err
	}
	choice, err := c.p.menu("Select a user", names, false)
	if err != nil {
		return "", err
	}
	if err := c.ctrl.SetViewingUser(ctx, c.session, names[choice]); err != nil {
		return "", err
	}
	return ScreenShowPosts, nil
}

// viewedPosts returns the viewed user's name and posts.
func (c *CLI) viewedPosts(ctx context.Context) (string, []models.PostSummary, error) {
	viewed, err := c.ctrl.ViewingUserInfo(ctx, c.session)
	if err != nil {
		return "", nil, err
	}
	posts, err := c.ctrl.ListPosts(ctx, viewed.Name)
	if err != nil {
		return "", nil, err
	}
	return viewed.Name, posts, nil
}

func (c *CLI) showPosts(ctx context.Context) (Screen, error) {
	name, posts, err := c.viewedPosts(ctx)
	if err != nil {
		return "", err
	}

	c.p.title(name + "'s Posts")
	for _, post := range posts {
		c.p.printf("Title: %s\n", post.Title)
		c.p.printf("Content: %s\n", post.Description)
		c.p.printf("Likes: %d\n", post.LikeCount)

		comments, err := c.ctrl.ListComments(ctx, post.ID)
		if err != nil {
			return "", err
		}
		if len(comments) > 0 {
			c.p.printf("Comments:\n")
			for _, comment := range comments {
				c.p.printf("\t%s: %s\n", comment.Author, comment.Comment)
			}
		}
		c.p.printf("\n")
	}
	if len(posts) == 0 {
		c.p.printf("No Posts\n")
	}

	items := []string{itemLike, itemComment, itemReturnHome}
	choice, err := c.p.menu("Select an action", items, false)
	if err != nil {
		return "", err
	}
	switch items[choice] {
	case itemLike:
		return ScreenLikePost, nil
	case itemComment:
		return ScreenCommentPost, nil
	default:
		return ScreenHome, nil
	}
}

// pickPost lets the user choose one of the viewed user's posts. ok is false
// when they return home instead.
func (c *CLI) pickPost(ctx context.Context, heading string) (models.PostSummary, bool, error) {
	_, posts, err := c.viewedPosts(ctx)
	if err != nil {
		return models.PostSummary{}, false, err
	}

	c.p.title(heading)
	items := make([]string, 0, len(posts)+1)
	for _, post := range posts {
		items = append(items, post.Title)
	}
	items = append(items, itemReturnHome)

	choice, err := c.p.menu("Select a post", items, false)
	if err != nil {
		return models.PostSummary{}, false, err
	}
	if choice == len(posts) {
		return models.PostSummary{}, false, nil
	}
	return posts[choice], true, nil
}

func (c *CLI) likePost(ctx context.Context) (Screen, error) {
	post, ok, err := c.pickPost(ctx, "Like posts")
	if err != nil || !ok {
		return ScreenHome, err
	}

	state, err := c.ctrl.ToggleLike(ctx, c.session, post.ID)
	if err != nil {
		return "", err
	}
	verb := "Unliked"
	if state.Liked {
		verb = "Liked"
	}
	c.p.printf("%s %q (%d likes)\n", verb, post.Title, state.LikeCount)
	return ScreenShowPosts, nil
}

func (c *CLI) commentPost(ctx context.Context) (Screen, error) {
	post, ok, err := c.pickPost(ctx, "Comment on a post")
	if err != nil || !ok {
		return ScreenHome, err
	}

	text, err := c.p.required("Comment: ")
	if err != nil {
		return "", err
	}
	if _, err := c.ctrl.AddComment(ctx, c.session, post.ID, text); err != nil {
		return "", err
	}
	return ScreenShowPosts, nil
}

func (c *CLI) writePost(ctx context.Context) (Screen, error) {
	c.p.title("Add Post")
	title, err := c.p.required("Title: ")
	if err != nil {
		return "", err
	}
	content, err := c.p.required("Content: ")
	if err != nil {
		return "", err
	}
	if _, err := c.ctrl.AddPost(ctx, c.session, title, content); err != nil {
		return "", err
	}
	return ScreenHome, nil
}

func orDash[T any](v *T) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}
