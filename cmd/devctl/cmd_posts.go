package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Read and write the post feed",
}

var postsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts, newest first",
	Args:  cobra.NoArgs,
	RunE:  runPostsList,
}

var postsCreateCmd = &cobra.Command{
	Use:   "create <text>",
	Short: "Publish a post",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPostsCreate,
}

var postsDeleteCmd = &cobra.Command{
	Use:   "delete <post-id>",
	Short: "Delete one of your posts",
	Args:  cobra.ExactArgs(1),
	RunE:  runPostsDelete,
}

var postsLikeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Like a post",
	Args:  cobra.ExactArgs(1),
	RunE:  runPostsLike,
}

var postsUnlikeCmd = &cobra.Command{
	Use:   "unlike <post-id>",
	Short: "Remove your like from a post",
	Args:  cobra.ExactArgs(1),
	RunE:  runPostsUnlike,
}

var postsCommentCmd = &cobra.Command{
	Use:   "comment <post-id> <text>",
	Short: "Comment on a post",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runPostsComment,
}

func parsePostID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid post id %q", raw)
	}
	return id, nil
}

func runPostsList(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	if err := sess.GetPosts(ctx); err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tAUTHOR\tLIKES\tCOMMENTS\tTEXT")
	for _, p := range sess.Store.State().Post.Posts {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", p.ID, p.Name, len(p.Likes), len(p.Comments), p.Text)
	}
	return w.Flush()
}

func runPostsCreate(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	post, err := sess.AddPost(ctx, strings.Join(args, " "))
	printAlerts(cmd)
	if err != nil {
		return fmt.Errorf("create post failed")
	}
	fmt.Fprintln(cmd.OutOrStdout(), post.ID)
	return nil
}

func runPostsDelete(cmd *cobra.Command, args []string) error {
	id, err := parsePostID(args[0])
	if err != nil {
		return err
	}
	ctx, cancel := commandContext(cmd)
	defer cancel()

	err = sess.DeletePost(ctx, id)
	printAlerts(cmd)
	if err != nil {
		return fmt.Errorf("delete post failed")
	}
	return nil
}

func runPostsLike(cmd *cobra.Command, args []string) error {
	return changeLike(cmd, args[0], true)
}

func runPostsUnlike(cmd *cobra.Command, args []string) error {
	return changeLike(cmd, args[0], false)
}

func changeLike(cmd *cobra.Command, raw string, like bool) error {
	id, err := parsePostID(raw)
	if err != nil {
		return err
	}
	ctx, cancel := commandContext(cmd)
	defer cancel()

	if like {
		err = sess.Like(ctx, id)
	} else {
		err = sess.Unlike(ctx, id)
	}
	printAlerts(cmd)
	if err != nil {
		return fmt.Errorf("update like failed")
	}
	return nil
}

func runPostsComment(cmd *cobra.Command, args []string) error {
	id, err := parsePostID(args[0])
	if err != nil {
		return err
	}
	ctx, cancel := commandContext(cmd)
	defer cancel()

	comments, err := sess.API.AddComment(ctx, id, strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d comments\n", len(comments))
	return nil
}
