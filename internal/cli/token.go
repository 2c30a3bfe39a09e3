package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kamrul-CSE-official/ksa-backend/internal/auth"
	"github.com/kamrul-CSE-official/ksa-backend/internal/config"
	"github.com/kamrul-CSE-official/ksa-backend/internal/refcodec"
)

// tokenDeps builds the codec and the bearer token signer from config.
type tokenDeps struct {
	codec func(cfg *config.Config) (*refcodec.Codec, error)
	jwt   func(cfg *config.Config, ttl time.Duration) *auth.JWTManager
}

var defaultTokenDeps = tokenDeps{
	codec: func(cfg *config.Config) (*refcodec.Codec, error) {
		return refcodec.New(cfg.Codec.Secret, refcodec.Mode(cfg.Codec.Mode))
	},
	jwt: func(cfg *config.Config, ttl time.Duration) *auth.JWTManager {
		return auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, ttl)
	},
}

// TokenCmd works with reference tokens and development bearer tokens.
func TokenCmd() *cobra.Command {
	return newTokenCmd(defaultTokenDeps)
}

func newTokenCmd(deps tokenDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Encode, decode and mint tokens",
		Long: `Translate between numeric ids and the opaque reference tokens used in
URLs, and mint bearer tokens for local development.

Examples:
  ksa token encode 1790012345678901248
  ksa token decode Zk9x...Q.c2Vj...w
  ksa token mint --user 6f1c... --dept Finance --ttl 1h`,
	}

	cmd.AddCommand(
		tokenEncodeCmd(deps),
		tokenDecodeCmd(deps),
		tokenMintCmd(deps),
	)
	return cmd
}

func loadCodec(deps tokenDeps) (*refcodec.Codec, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return deps.codec(cfg)
}

func tokenEncodeCmd(deps tokenDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <id>",
		Short: "Encode a numeric id into a reference token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id %q is not an integer", args[0])
			}

			codec, err := loadCodec(deps)
			if err != nil {
				return err
			}
			token, err := codec.EncodeID(id)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
}

func tokenDecodeCmd(deps tokenDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <token>",
		Short: "Decode a reference token into its numeric id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := loadCodec(deps)
			if err != nil {
				return err
			}

			id, err := codec.DecodeID(args[0])
			if err != nil {
				return fmt.Errorf("decode %s token: %w", codec.Mode(), err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}

func tokenMintCmd(deps tokenDeps) *cobra.Command {
	var (
		user string
		dept string
		ttl  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Mint a bearer token for local development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(user)
			if err != nil || userID == uuid.Nil {
				return fmt.Errorf("--user must be a non-nil uuid")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			token, err := deps.jwt(cfg, ttl).GenerateAccessToken(userID, dept)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			printf(cmd.ErrOrStderr(), warnColor, "expires in %s; for development only\n", ttl)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "user id (uuid) placed in the subject claim")
	cmd.Flags().StringVar(&dept, "dept", "", "department claim")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
