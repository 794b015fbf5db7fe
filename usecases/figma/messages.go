package figma

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/mo"

	"figmarelay/models"
	"figmarelay/utils"
)

const figmaDesignURL = "https://www.figma.com/design/"

const (
	DefaultReplyImageURL   = "https://media1.tenor.com/m/Be-YL9ewKnMAAAAC/diseñadorcliente4.gif"
	DefaultThreadImageURL  = "https://media1.tenor.com/m/ehqokSFplPIAAAAd/design-designer.gif"
	DefaultVersionImageURL = "https://i.namu.wiki/i/vcPIh-2LKgTCpeKuzLpVs1uGs9RHtZDezU438Wk5za0W18Zf_A9k7OO9kAz4yzWW31KjB2Talrzbldmvjv5KGw.gif"
)

func (i EmbedImages) withDefaults() EmbedImages {
	if i.ReplyURL == "" {
		i.ReplyURL = DefaultReplyImageURL
	}
	if i.ThreadURL == "" {
		i.ThreadURL = DefaultThreadImageURL
	}
	if i.VersionURL == "" {
		i.VersionURL = DefaultVersionImageURL
	}
	return i
}

// buildCommentBody renders the quoted parent (replies only) followed by one line per fragment
func (u *FigmaUseCase) buildCommentBody(event *models.FigmaEvent, maybeParentMessage mo.Option[string]) string {
	var body strings.Builder

	if parentMessage, ok := maybeParentMessage.Get(); ok {
		body.WriteString(">>> `" + u.replacer.Replace(parentMessage) + "`\n\n")
	}

	if event.Comment.IsList {
		for _, fragment := range event.Comment.Fragments {
			switch {
			case fragment.Text != "":
				body.WriteString(u.replacer.Replace(fragment.Text) + "\n")
			case fragment.Mention != "":
				body.WriteString("Mentioned user: " + fragment.Mention + "\n")
			}
		}
	} else if len(event.Comment.Fragments) > 0 && event.Comment.Fragments[0].Text != "" {
		body.WriteString(u.replacer.Replace(event.Comment.Fragments[0].Text) + "\n")
	}

	return body.String()
}

func resolutionStatus(resolvedAt string) string {
	if resolvedAt != "" {
		return "resolved at " + resolvedAt
	}
	return "unsolved"
}

func commentLink(fileKey, nodeID, anchorCommentID string) string {
	utils.AssertInvariant(nodeID != "", "comment link needs a resolved node ID")
	return fmt.Sprintf("%s%s?node-id=%s#%s", figmaDesignURL, fileKey, nodeID, anchorCommentID)
}

func fileLink(fileKey, fileName string) string {
	if fileName == "" {
		return figmaDesignURL + fileKey
	}
	return figmaDesignURL + fileKey + "/" + url.PathEscape(fileName)
}

func author(user models.FigmaUser) *discordgo.MessageEmbedAuthor {
	return &discordgo.MessageEmbedAuthor{
		Name:    user.Handle,
		IconURL: user.ImgURL,
	}
}

func (u *FigmaUseCase) buildCommentEmbed(
	event *models.FigmaEvent,
	nodeID, anchorCommentID, body string,
) models.DiscordEmbed {
	title := "New comment thread on design"
	imageURL := u.images.ThreadURL
	color := models.EmbedColorThread
	if event.IsReply() {
		title = "New reply on comment"
		imageURL = u.images.ReplyURL
		color = models.EmbedColorReply
	}

	return models.DiscordEmbed{
		Author:      author(event.TriggeredBy),
		Title:       fmt.Sprintf("[%s] %s", event.FileName, title),
		URL:         commentLink(event.FileKey, nodeID, anchorCommentID),
		Description: resolutionStatus(event.ResolvedAt) + "\n" + body,
		Image:       &discordgo.MessageEmbedImage{URL: imageURL},
		Timestamp:   event.Timestamp,
		Color:       color,
	}
}

func (u *FigmaUseCase) buildVersionEmbed(event *models.FigmaEvent) models.DiscordEmbed {
	return models.DiscordEmbed{
		Author:      author(event.TriggeredBy),
		Title:       fmt.Sprintf("[%s] **New version update on design: %s**", event.FileName, event.Label),
		URL:         fileLink(event.FileKey, event.FileName),
		Description: ">>> " + event.Description,
		Image:       &discordgo.MessageEmbedImage{URL: u.images.VersionURL},
		Timestamp:   event.Timestamp,
		Color:       models.EmbedColorVersionUpdate,
	}
}
