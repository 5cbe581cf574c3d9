package catalog

// Basic checklist groups.
const (
	GroupCommon      = "Common Checks"
	GroupAudioVisual = "Audio/Visual Checks"
	GroupForms       = "Form Checks"
)

// basicCatalog is the easy-checks checklist, derived from the W3C WAI
// Easy Checks guidance. Canonical order is insertion order.
var basicCatalog = New([]Criterion{
	{
		ID:          "imageAlt",
		DisplayName: "Image Alternative Text",
		Group:       GroupCommon,
		Description: `Image alternative text ("alt text") is a short description that conveys the purpose of an image. Alternative text is used by people who do not see the image.`,
		HowToCheck: `- Ensure alternative "alt" text conveys the content and function for all non-decorative images. It should be succinct, accurate, and useful.
- Look for images of text or text embedded on images, and confirm that the text is represented either in the body text or in the alt text. Check this by trying to highlight text with your cursor.`,
		LearnMoreURL: "https://www.w3.org/WAI/test-evaluate/easy-checks/image-alt/",
	},
	{
		ID:           "pageTitle",
		DisplayName:  "Page Title",
		Group:        GroupCommon,
		Description:  `Page titles are shown in the window title bar or tab in browsers. They are the first thing read by screen readers and help people know where they are.`,
		LearnMoreURL: "https://www.w3.org/WAI/test-evaluate/easy-checks/title/",
	},
	{
		ID:           "headings",
		DisplayName:  "Headings",
		Group:        GroupCommon,
		Description:  `Headings communicate the organization of the content on the page, like a table of contents. Screen reader users often use page headings as a way to navigate a web page. Also see Body Text Review.`,
		LearnMoreURL: "https://www.w3.org/WAI/test-evaluate/easy-checks/headings/",
	},
	{
		ID:          "colorContrast",
		DisplayName: "Color Contrast",
		Group:       GroupCommon,
		Description: `Color contrast refers to the difference between adjacent colors. Typically this is the text and background color. It also includes interactive elements and their background, and parts of graphs or charts. Some people cannot read text or find elements if there is insufficient contrast between colors.`,
		HowToCheck: `- Check that the text and background color has a contrast ratio of at least 4.5:1.
- Ensure color is not used as the only way of conveying meaning or information.`,
		LearnMoreURL: "https://www.w3.org/WAI/test-evaluate/easy-checks/color-contrast/",
	},
	{
		ID:           "skipLink",
		DisplayName:  "Skip Link",
		Group:        GroupCommon,
		Description:  `A skip link is the first interactive element on a page. People using keyboards, screen readers and other assistive technologies can use skip links to quickly and easily reach the main page content.`,
		LearnMoreURL: "https://www.w3.org/WAI/test-evaluate/easy-checks/skip-link/",
	},
	{
		ID:          "keyboardFocus",
		DisplayName: "Visible Keyboard Focus",
		Group:       GroupCommon,
		Description: `Can all interactive elements be selected and activated using the keyboard?`,
		HowToCheck: `How to test with a keyboard:
- Tab: Navigate to links and form controls.
- Shift + Tab: Navigate backwards.
- Spacebar: Activate checkboxes and buttons.
- Enter: Activate links and buttons.
- Arrow keys: Radio buttons, select/drop-down menus, sliders, tab panels, auto-complete, tree menus, etc.
- Escape: Dismisses browser dialog or menu.

What to check for:
- Is anything mouse-only, such as rollover menus?
- Is a "skip navigation" link available? Activate the skip link and hit Tab again to ensure it functions correctly.
- Is the navigation order logical and intuitive?
- Is a visible keyboard focus indicator present?
- Test dialogs that 'pop' open. Can you navigate and close the dialog? Does focus return to a logical place?
- Esc should also close all dialogs.`,
		ToolMethod:   "Keyboard",
		LearnMoreURL: "https://www.w3.org/WAI/test-evaluate/easy-checks/keyboard-focus/",
	},
	{
		ID:           "language",
		DisplayName:  "Language of Page",
		Group:        GroupCommon,
		Description:  `Web pages should identify the primary language of the page. Specifying the language of the page means that assistive technology that speaks content can correctly pronounce words.`,
		LearnMoreURL: "https://www.w3.org/WAI/test-evaluate/easy-checks/language/",
	},
	{
		ID:          "zoom",
		DisplayName: "Zoom",
		Group:       GroupCommon,
		Description: `Zoom is used to enlarge the text and images on web pages to make them more readable. Some people need to enlarge content in order to read it. When content is zoomed it still needs to be legible and usable.`,
		HowToCheck: `Zoom to 200% (Control + for PCs, Command + for Mac):
- Is all the content still present on the page and is it still in an order that makes sense?
- Does any of the content overlap or become far apart?
- Do navigation bars or menus get replaced with mobile-style menus, and can you navigate and close the menus?
- Do you have to scroll horizontally to read everything, and is anything cut off?
- Do links, buttons, forms, and menus still function with the content zoomed?`,
		ToolMethod:   "Browser: Zoom to 200%",
		LearnMoreURL: "https://www.w3.org/WAI/test-evaluate/easy-checks/zoom/",
	},
	{
		ID:          "bodyText",
		DisplayName: "Body Text Review",
		Group:       GroupCommon,
		Description: `The body text of a page should be well-structured and easy to understand. This includes proper heading hierarchy, descriptive link text, and clear language.`,
		HowToCheck: `- Confirm that page titles are unique and descriptive, marked as <h1>. There should only be one <h1> per page.
- Ensure visual headings are useful and descriptive, and marked up with an <h> element and in hierarchical order (<h1>, <h2>, etc.). Look for skipped heading levels (<h2> to <h4>).
- Look for generic link text like "read more" or "click here."
- Check that plain language is used instead of jargon, and all acronyms are spelled out on first reference.`,
	},
	{
		ID:          "screenReader",
		DisplayName: "Screen Reader Test",
		Group:       GroupCommon,
		Description: `Test with a screen reader to uncover issues with reading order, spelling, dynamic content, and interactive elements. While a little daunting at first, it is an essential and informative step in assessing your content for accessibility.`,
		ToolMethod: `Free screen readers:
- Mac users: VoiceOver (built in)
- PC users: NVDA
Other screen readers:
- PC users: JAWS`,
	},
	{
		ID:          "tables",
		DisplayName: "Tables",
		Group:       GroupCommon,
		Description: `Tables should be used for presenting tabular data, not for layout purposes. Proper table structure helps screen reader users understand the relationships between headers and data cells.`,
		HowToCheck: `- Confirm that tables are only used for tabular data, not for layout.
- If data tables are present, ensure table caption and row and/or column headers are present.`,
	},
	{
		ID:           "captions",
		DisplayName:  "Captions",
		Group:        GroupAudioVisual,
		Description:  `Captions are a text version of the speech and non-speech audio information needed to understand the video and displayed with the video. The audio in video content needs to be available to people who are Deaf or hard of hearing.`,
		LearnMoreURL: "https://www.w3.org/WAI/test-evaluate/easy-checks/captions/",
	},
	{
		ID:           "transcripts",
		DisplayName:  "Transcripts",
		Group:        GroupAudioVisual,
		Description:  `Transcripts are a text version of the speech and non-speech information in audio content and available separately from the video. They are used by people who are Deaf, hard of hearing or who have difficulty processing audio information.`,
		LearnMoreURL: "https://www.w3.org/WAI/test-evaluate/easy-checks/transcripts/",
	},
	{
		ID:           "audioDescription",
		DisplayName:  "Audio Description",
		Group:        GroupAudioVisual,
		Description:  `Audio description describes visual information needed to understand the content, including text displayed in the video, as part of the video. It provides content to people who are blind and others who cannot see the video adequately.`,
		LearnMoreURL: "https://www.w3.org/WAI/test-evaluate/easy-checks/description/",
	},
	{
		ID:          "formLabels",
		DisplayName: "Labels",
		Group:       GroupForms,
		Description: `Form field labels are the text beside form fields. They should tell us what information to enter or what checkbox to select. Everyone needs labels to understand how to interact with a form.`,
		HowToCheck: `- Make sure form controls have descriptive labels.
- If a label is not visible, check for a hidden <label>, aria-label, or title attribute.`,
		LearnMoreURL: "https://www.w3.org/WAI/test-evaluate/easy-checks/form-field-labels/",
	},
	{
		ID:           "requiredFields",
		DisplayName:  "Required Fields",
		Group:        GroupForms,
		Description:  `A required form field must be completed before you submit a form. Marking which fields are required in a form makes it easier for everyone to complete forms.`,
		LearnMoreURL: "https://www.w3.org/WAI/test-evaluate/easy-checks/required-fields/",
	},
})
