package catalog

// WCAG principles used as Category values for the in-depth catalog.
const (
	CategoryPerceivable    = "Perceivable"
	CategoryOperable       = "Operable"
	CategoryUnderstandable = "Understandable"
	CategoryRobust         = "Robust"
)

// inDepthCatalog is the WCAG 2.2 success criteria list. Entries are keyed
// by their dotted criterion number and sorted into numeric order at init.
var inDepthCatalog = New(sortByNumber([]Criterion{
	{
		ID:           "1.3.4",
		DisplayName:  "1.3.4 Orientation",
		Category:     CategoryPerceivable,
		Level:        "AA",
		Description:  "Web content should work well whether the device is in portrait or landscape mode, unless specific mode is necessary for proper function (like a piano app needing landscape mode)",
		HowToCheck:   "Use the browser's developer tools to simulate a mobile device view and switch between portrait and landscape modes and ensure that content is correctly displayed and functional",
		ToolMethod:   "Devtools Device Mode or resizing window",
		WhereToCheck: "Full screen",
	},
	{
		ID:           "3.2.3",
		DisplayName:  "3.2.3 Consistent Navigation",
		Category:     CategoryUnderstandable,
		Level:        "AA",
		Description:  "Navigation (e.g. a menu), components with the same function, and help options, should remain consistent across pages",
		HowToCheck:   "Browse different pages and compare the placement and order of navigation elements",
		ToolMethod:   "Visually Inspect",
		WhereToCheck: "Across the whole website/app (or multiple screens)",
	},
	{
		ID:           "3.2.6",
		DisplayName:  "3.2.6 Consistent Help",
		Category:     CategoryUnderstandable,
		Level:        "A",
		Description:  "If a website/app provides help (like live chat or FAQ links), those help options should always be easy to find in the same place on every page",
		HowToCheck:   "1. Identify where help options (e.g., help links, support chat) are placed across the site\n2. Compare different pages to confirm the help options are consistently located in the same place",
		ToolMethod:   "Visually Inspect",
		WhereToCheck: "Look for help services such as:\n- Live chat\n- FAQ links",
	},
	{
		ID:           "2.4.5",
		DisplayName:  "2.4.5 Multiple Ways",
		Category:     CategoryOperable,
		Level:        "AA",
		Description:  "Users should have more than one way to find any given page on your site, like using a search bar, navigation menus, or a site map",
		HowToCheck:   "1. Ensure the website has at least two ways to find pages (e.g., navigation menus, a search bar, a site map)\n2. Try using different methods to locate the same page (e.g., using the site's search function or navigation menu)",
		ToolMethod:   "Manual inspection",
		WhereToCheck: "Applies to whole target website/app and look for search functionality and navigation menu",
	},
	{
		ID:           "2.4.2",
		DisplayName:  "2.4.2 Page Titled",
		Category:     CategoryOperable,
		Level:        "A",
		Description:  "Every webpage should have a unique, clear, and descriptive title that helps users understand what the page is about",
		HowToCheck:   "1. View the title of the page (usually in the browser's title bar or tab) and confirm it's descriptive and relevant to the content\n2. Check if titles accurately reflect the content of the page",
		ToolMethod:   "Manual inspection (read)",
		WhereToCheck: "Check the title in the browser tab",
	},
	{
		ID:           "3.1.1",
		DisplayName:  "3.1.1 Language of Page",
		Category:     CategoryUnderstandable,
		Level:        "A",
		Description:  "The main language of the webpage must be defined in the code, so assistive tools can present the content correctly.",
		HowToCheck:   "Inspect the page's HTML for the lang attribute in the <html> tag and verify that it correctly identifies the main language of the page (e.g., lang='en' for English)",
		ToolMethod:   "- Screen reader\n- Browser dev. tool (inspect element)",
		WhereToCheck: "Check the page HTML. The [lang] attribute is often on the top of the page",
	},
	{
		ID:           "3.1.2",
		DisplayName:  "3.1.2 Language of Parts",
		Category:     CategoryUnderstandable,
		Level:        "AA",
		Description:  "If a section of the page uses a different language from the main language (e.g., a quote in Spanish on an English page), it must be marked in the code so it's announced with correct pronunciation.",
		HowToCheck:   "1. Review the page for sections of content in different languages.\n2. Inspect the HTML of the language-specific content to ensure the correct lang attribute is applied (e.g., lang='es' for Spanish).",
		ToolMethod:   "- Screen reader\n- Browser dev. tool (inspect element)",
		WhereToCheck: "Check full screen for words or sections that are in a different language than the main language (e.g. an English quote on a page where the rest of the copy is in Dutch)",
	},
	{
		ID:           "1.4.10",
		DisplayName:  "1.4.10 Reflow",
		Category:     CategoryPerceivable,
		Level:        "AA",
		Description:  "Users should be able to zoom in (up to 400%) on content without needing to scroll sideways (horizontally) or losing content/functionality.",
		HowToCheck:   "Zoom in to 400% on a standard desktop browser and ensure content adapts to the new screen width (no horizontal scrolling or hidden content)",
		ToolMethod:   "Browser: Zoom to 400%",
		WhereToCheck: "Full screen",
	},
	{
		ID:           "2.2.1",
		DisplayName:  "2.2.1 Timing Adjustable",
		Category:     CategoryOperable,
		Level:        "A",
		Description:  "If a task has a time limit (like filling out a form or payment flow or automatic log out due to inactivity), users should be able to extend the time or receive a warning before it expires.",
		HowToCheck:   "1. Identify any functionality with time limits (e.g., forms, quizzes).\n2. Verify that users can extend the time, turn it off, or receive a warning",
		ToolMethod:   "Manual inspection (doing)",
		WhereToCheck: "Check whole target website / app to see if any screen applies a time limit mechanism.",
	},
	{
		ID:           "2.2.2",
		DisplayName:  "2.2.2 Pause, Stop, Hide",
		Category:     CategoryOperable,
		Level:        "A",
		Description:  "Information that moves, blinks, scrolls or auto-updates can be paused, stopped or hidden if there is other content, too.",
		HowToCheck:   "1. Identify any moving or auto-updating content:\n2. Verify that there are controls to pause, stop, or hide the moving content",
		ToolMethod:   "Interactive elements such as,\n- carousels,\n- animations,\n- auto-updating feeds",
		WhereToCheck: "Content such as,\n- Videos\n- Animations",
	},
	{
		ID:           "2.3.1",
		DisplayName:  "2.3.1 Three Flashes or Below Threshold",
		Category:     CategoryOperable,
		Level:        "A",
		Description:  "There are no flashes happening more often than three times per second, or that the flashing is below a certain threshold that won't trigger seizures",
		HowToCheck:   "Ensure that flashing occurs fewer than three times per second, or that the flashing is minimal in contrast and brightness.",
		ToolMethod:   "Manual inspection (Visually Inspect)",
		WhereToCheck: "Content such as,\n- Videos\n- Animations",
	},
	{
		ID:           "1.2.1",
		DisplayName:  "1.2.1 Audio-only and Video-only (Prerecorded)",
		Category:     CategoryPerceivable,
		Level:        "A",
		Description:  "Provide text transcripts for audio-only content and either transcripts or descriptions for video-only content.",
		HowToCheck:   "A. Transcripts are available for audio-only content.\nB. Transcripts or descriptions are available for video-only content.",
		ToolMethod:   "Manual inspection",
		WhereToCheck: "- Audio only (e.g. podcast)\n- Video only (e.g. instructional animation)",
	},
	{
		ID:           "1.2.2",
		DisplayName:  "1.2.2 Captions (Prerecorded)",
		Category:     CategoryPerceivable,
		Level:        "A",
		Description:  "Provide captions for any prerecorded video content that includes audio",
		HowToCheck:   "1. Check if all prerecorded videos with audio have captions.\n2. Check if captions accurately reflect spoken content and audio cues.",
		ToolMethod:   "Manual inspection",
		WhereToCheck: "Pre-recorded video (if owned by business)",
	},
	{
		ID:           "1.2.3",
		DisplayName:  "1.2.3 Audio Description or Media Alternative (Prerecorded)",
		Category:     CategoryPerceivable,
		Level:        "A",
		Description:  "Provide an audio description or a text alternative for video content to describe visual information for users who cannot see the video (e.g. people are walking)",
		HowToCheck:   "1. Verify that audio descriptions or text alternatives are available for prerecorded video content.\n2. Ensure that the video player supports audio descriptions if they are provided.",
		ToolMethod:   "Manual inspection\n- Doing\n- Listening",
		WhereToCheck: "Pre-recorded video (if owned by business)",
	},
	{
		ID:           "1.2.4",
		DisplayName:  "1.2.4 Captions (Live)",
		Category:     CategoryPerceivable,
		Level:        "AA",
		Description:  "Provide real-time captions for any live video content that includes audio.",
		HowToCheck:   "Check the availability and quality of real-time captions in the video player.",
		ToolMethod:   "Manual inspection",
		WhereToCheck: "Live stream (if owned by business)",
	},
	{
		ID:           "1.2.5",
		DisplayName:  "1.2.5 Audio Description (Prerecorded)",
		Category:     CategoryPerceivable,
		Level:        "AA",
		Description:  "Provide audio descriptions for prerecorded video content to describe important visual details for users who cannot see the video.",
		HowToCheck:   "1. Play the video and listen without looking at the screen to see if you can fully understand what's happening.\n2. Ensure that an audio description track is available (either as a secondary audio track or as a part of the main video).\n3. Confirm that the audio description clearly explains important visual elements, like actions or changes in the setting.",
		ToolMethod:   "Manual inspection\n- Doing\n- Listening",
		WhereToCheck: "Pre-recorded video (if owned by business)",
	},
	{
		ID:           "1.4.2",
		DisplayName:  "1.4.2 Audio Control",
		Category:     CategoryPerceivable,
		Level:        "A",
		Description:  "Users should be able to stop or control any audio that plays automatically for more than three seconds.",
		HowToCheck:   "- Auto-playing Audio: Identify any audio content that plays automatically.\n- Control Mechanisms:Ensure there are controls to pause, stop, or adjust the volume of the audio. This could be a media player with these controls readily accessible.",
		ToolMethod:   "Manual Testing: Play the webpage and identify any auto-playing audio. Verify the presence and functionality of audio controls.",
		WhereToCheck: "Anything with audio",
	},
	{
		ID:           "1.4.11",
		DisplayName:  "1.4.11 Non-text Contrast",
		Category:     CategoryPerceivable,
		Level:        "AA",
		Description:  "Interactive elements like buttons and form fields must have enough contrast (3:1) against their background to be easily distinguishable.",
		HowToCheck:   "1. Identify Non-text Elements: Find interactive components such as buttons, form controls, and icons.\n2. Check Contrast Ratios:\nMeasure the contrast ratio between the element (or its borders) and the background ensuring it's at least 3:1.",
		ToolMethod:   "Contrast Ratio Checker:",
		WhereToCheck: "Find interactive components such as\n- Buttons\n- Form controls\n- Icons",
	},
	{
		ID:           "1.4.3",
		DisplayName:  "1.4.3 Contrast (Minimum)",
		Category:     CategoryPerceivable,
		Level:        "AA",
		Description:  "Text should have enough contrast with its background to be easily readable. Normal text needs a higher contrast ratio than large text.",
		HowToCheck:   "- Normal text contrast ratio is at least 4.5:1.\n- Large text contrast ratio is at least 3:1.\n- All text is readable against its background",
		ToolMethod:   "Contrast Ratio Checker:",
		WhereToCheck: "Text",
	},
	{
		ID:           "2.5.1",
		DisplayName:  "2.5.1 Pointer Gestures",
		Category:     CategoryOperable,
		Level:        "A",
		Description:  "If a function requires complex gestures (e.g., two-finger swipe), users should be able to perform the same action with simple, single-point actions (e.g., a click).",
		HowToCheck:   "1. Identify any gestures that require more than one point of contact or path-based gestures. Verify that a simpler alternative is available.\n2. Try performing the gesture-based actions with a single mouse click or tap to ensure functionality is preserved.",
		ToolMethod:   "Manual inspection\n- Device with touchscreen (phone / tablet)\n- Hands\n- Mouse (pointer device)",
		WhereToCheck: "Applies to whole target website/app",
	},
	{
		ID:           "2.5.2",
		DisplayName:  "2.5.2 Pointer Cancellation",
		Category:     CategoryOperable,
		Level:        "A",
		Description:  "If a user accidentally touches or clicks something, they should be able to cancel the action before it completes (e.g., by dragging away before releasing a click).",
		HowToCheck:   "1. Ensure that actions do not trigger until the user has released the pointer (e.g., mouse button or finger tap). If the user drags away before releasing, the action should cancel.\n2. Test actions with both a mouse and touchscreen to verify pointer cancellation.",
		ToolMethod:   "Manual inspection:\n- Device with touchscreen (phone / tablet)\n- Hands\n- Mouse (pointer device)",
		WhereToCheck: "Find every interactive component that has a down state such as:\n- Buttons\n- Links\n- Form Fields\n- Dropdown menus\n- Checkboxes",
	},
	{
		ID:           "1.4.13",
		DisplayName:  "1.4.13 Content on Hover or Focus",
		Category:     CategoryPerceivable,
		Level:        "AA",
		Description:  "If content (like a tooltip or dropdown) appears when you hover over or focus on an element, it should be easy to close, stay visible long enough to be read, and not disappear unless intentionally dismissed.",
		HowToCheck:   "1. Trigger Hover or Focus Content:\nInteract with elements that display additional content on hover or focus, like tooltips, popups, or dropdown menus.\n2. Check for Dismissibility:\nVerify that users can dismiss the content without moving the pointer or keyboard focus.\n3. Ensure Content Visibility:\nConfirm that the additional content remains visible as long as the user hovers over or focuses on the trigger element or the content itself.\n4. No Unexpected Disappearance:\nEnsure the content does not disappear unexpectedly when the pointer or focus is over it.",
		ToolMethod:   "Manual Testing:\n- Mouse\n- Keyboard",
		WhereToCheck: "Find interactive components such as\n- Tooltips\n- Popups\n- Dropdown menus",
	},
	{
		ID:           "2.5.7",
		DisplayName:  "2.5.7 Dragging Movements",
		Category:     CategoryOperable,
		Level:        "AA",
		Description:  "If users need to drag something (like a slider), there must be an alternative method like tapping or clicking to complete the action.",
		HowToCheck:   "1. Identify any functions requiring dragging (like sliders or drag-and-drop interfaces).\n2. If so, ensure users can complete the same function using simple click or tap actions.",
		ToolMethod:   "Manual Inspection:\n- Mouse\n- Device with touchscreen (phone / tablet)",
		WhereToCheck: "Interactive elements that apply drag interactions such as:\n- Sliders\n- Carousels\n- Change list order",
	},
	{
		ID:           "2.5.8",
		DisplayName:  "2.5.8 Target Size (Minimum)",
		Category:     CategoryOperable,
		Level:        "AA",
		Description:  "The target size of an interactive component is at least 24 by 24px",
		HowToCheck:   "1. Verify that buttons, links, and other interactive elements are at least 24x24 CSS pixels or larger.\n2. Test buttons and links on touch devices to ensure they are easy to tap without accidentally activating adjacent elements.",
		ToolMethod:   "Manual Inspection:\n- Mouse\n- Device with touchscreen (phone / tablet)\n- Browser dev. tool (inspect element)",
		WhereToCheck: "Interactive elements that can be pressed/clicked such as:\n- Buttons\n- Icon buttons\n- Links\n- Tabs\n- List items\n- Checkboxes\n- Radioboxes",
	},
	{
		ID:           "2.4.1",
		DisplayName:  "2.4.1 Bypass Blocks",
		Category:     CategoryOperable,
		Level:        "A",
		Description:  "There should be a way for users to skip over things like navigation menus and go directly to the main content, especially useful for screen reader and keyboard users.",
		HowToCheck:   "1. Look for a \"Skip to main content\" link at the top of the page. Test whether it appears when using the Tab key.\n2. Press tab to see if the skip link is visible and functional. It should move focus to the main content when selected.",
		ToolMethod:   "Manual inspection (doing)",
		WhereToCheck: "Check if there is a skip link at the top the page",
	},
	{
		ID:           "2.4.3",
		DisplayName:  "2.4.3 Focus Order",
		Category:     CategoryOperable,
		Level:        "A",
		Description:  "When using the keyboard [Tab key] to navigate, the focus should move through elements in a logical order, such as left to right and top to bottom, making it easy to use and understand.",
		HowToCheck:   "1. Use the Tab key to move through the page and confirm that the focus moves in a logical order, following the visual layout of the page\n2. Ensure that as focus moves, the currently focused element is visibly highlighted.",
		ToolMethod:   "Keyboard",
		WhereToCheck: "Every interactive element on the screen",
	},
	{
		ID:           "2.4.7",
		DisplayName:  "2.4.7 Focus Visible",
		Category:     CategoryOperable,
		Level:        "AA",
		Description:  "While using a keyboard, it's clear where the focus is. And when a component has focus, it can still be (partially) seen, so it's not hidden by a different interface element",
		HowToCheck:   "1. Use the Tab key to navigate the site\ncheck that a visible outline or indicator shows where the focus is.\n2. Ensure that links, buttons, and form fields all display a visible focus indicator when selected via keyboard.",
		ToolMethod:   "Manual inspection\n- Keyboard\n- Visually Inspect",
		WhereToCheck: "Find interactive components such as\n- Links\n- Buttons\n- Form fields",
	},
	{
		ID:           "2.4.11",
		DisplayName:  "2.4.11 Focus Not Obscured (Minimum)",
		Category:     CategoryOperable,
		Level:        "AA",
		Description:  "When navigating with the keyboard, the focused element should always be fully visible and not blocked by other elements.",
		HowToCheck:   "1. Use the Tab key to navigate through all focusable elements.\nEnsure that none of the focused elements are partially or fully hidden.\n2. Make sure sticky elements like headers or footers do not block the view of the focused item.",
		ToolMethod:   "- Keyboard\n- Visually Inspect",
		WhereToCheck: "- All elements that have a focus state\n- Sticky elements (e.g. headers, footers)",
	},
	{
		ID:           "2.1.1",
		DisplayName:  "2.1.1 Keyboard",
		Category:     CategoryOperable,
		Level:        "A",
		Description:  "Users can use the interface with a keyboard, unless it depends on a specific path of the user input. This should not require specific timing between keystrokes and cannot trap the keyboard focus.",
		HowToCheck:   "1. Check if your able to connect a keyboard device\n2. Use the Tab key to navigate through the webpage and ensure all interactive elements (links, buttons, form fields, etc.) can be accessed and operated with a keyboard.",
		ToolMethod:   "Manual Testing:\n- Keyboard",
		WhereToCheck: "Applies to whole target website/app",
	},
	{
		ID:           "2.1.2",
		DisplayName:  "2.1.2 No Keyboard Trap",
		Category:     CategoryOperable,
		Level:        "A",
		Description:  "Keyboard users must be able to freely navigate without getting stuck on any element.",
		HowToCheck:   "1. Test Keyboard Navigation:\nUse the Tab key to navigate through all interactive elements (links, buttons, forms, etc.). Verify that focus moves smoothly between elements.\n2. Escape Mechanism:\nIf there are components like modals, popups, or dropdowns, make sure you can close or exit them using the keyboard (e.g., pressing Esc or Tab).",
		ToolMethod:   "Manual Testing:\n- Keyboard",
		WhereToCheck: "Applies to whole target website/app",
	},
	{
		ID:           "2.1.4",
		DisplayName:  "2.1.4 Character Key Shortcuts",
		Category:     CategoryOperable,
		Level:        "A",
		Description:  "Single-key shortcuts can cause problems for some users, so there should be a way to disable, remap or modify (like Ctrl or Alt) them to prevent accidental activation.",
		HowToCheck:   "Identify any single-key keyboard shortcuts and check if they can be turned off or require a modifier.",
		ToolMethod:   "Manual inspection (doing)",
		WhereToCheck: "Check whole target website / app to see if any single key shortcuts are offered",
	},
	{
		ID:           "3.2.1",
		DisplayName:  "3.2.1 On Focus",
		Category:     CategoryUnderstandable,
		Level:        "A",
		Description:  "When focussing on an interactive element (like a form field), it should not automatically trigger an action or change the page.",
		HowToCheck:   "Use the Tab key to navigate through the interactive elements (e.g., links, buttons, form fields). Confirm that focusing on these elements does not cause unexpected changes in content or behavior.",
		ToolMethod:   "- Keyboard (Tab key)",
		WhereToCheck: "Interactive elements such as:\n- Checkbox\n- Dropdown menu",
	},
	{
		ID:           "3.2.2",
		DisplayName:  "3.2.2 On Input",
		Category:     CategoryUnderstandable,
		Level:        "A",
		Description:  "When interacting with an interactive element (e.g., selecting a dropdown option) should not automatically trigger changes (like submitting the form) without warning.",
		HowToCheck:   "1. Interact with form fields and check that changes to inputs (e.g., typing or selecting an option) do not cause unexpected actions.\n2. Ensure that if a change in input does trigger an action, users are warned about it beforehand.",
		ToolMethod:   "Manual inspection:\n- Keyboard\n- Mouse",
		WhereToCheck: "Interactive elements such as:\n- Checkboxes\n- Radiobuttons\n- Form fields",
	},
	{
		ID:           "2.5.4",
		DisplayName:  "2.5.4 Motion Actuation",
		Category:     CategoryOperable,
		Level:        "A",
		Description:  "Anything which can be achieved by moving the device, can be:\na. turned off and\nb. also be achieved through the interface. (example of playstation controller that has motion trackers or shake phone undo action)",
		HowToCheck:   "1. Identify any features triggered by motion (like shaking a device).\n2. If so, ensure that a button or other input is available to perform the same function without moving the device.",
		ToolMethod:   "Manual inspection\n- Mobile or tablet devices",
		WhereToCheck: "Applies to whole target website/app",
	},
	{
		ID:           "1.3.1",
		DisplayName:  "1.3.1 Info and Relationships",
		Category:     CategoryPerceivable,
		Level:        "A",
		Description:  "Use HTML elements properly (like headings, lists, tables) to ensure that content structure is understandable by assistive technologies.",
		HowToCheck:   "1. Semantic HTML: Verify that HTML elements are used correctly (e.g., headings are marked with <h1> to <h6>, lists with <ul>, <ol>, and <li>, tables with <table>, <tr>, <th>, and <td>).\n2. ARIA Landmarks: Check for ARIA landmarks to define page regions (e.g., role=\"main\", role=\"banner\").\n3. Form Labels: Ensure form controls have associated labels (<label> elements or aria-label attributes).",
		ToolMethod:   "Browser dev. tool",
		WhereToCheck: "- Heading\n- Textfield\n- Group\n- Checkbox\n- Button\n- List\n- Link",
	},
	{
		ID:           "1.1.1",
		DisplayName:  "1.1.1 Non-text Content",
		Category:     CategoryPerceivable,
		Level:        "A",
		Description:  "Any image, video, audio, or other non-text elements on a webpage must have a text description that conveys the same information. This text can be read by screen readers, helping users who cannot see or hear the content understand what it is.",
		HowToCheck:   "A. Images: Check for Alt Text: Right-click on the image and select \"Inspect\" (or use the browser's developer tools). Look for the alt attribute within the img tag.\nAlt Text Quality: Ensure the alt text is descriptive and conveys the purpose of the image. For example, <img src=\"logo.png\" alt=\"Company Logo\">.\n\nB. Decorative Images: No Alt Text: Decorative images should have an empty alt attribute (alt=\"\"). This indicates to screen readers that the image can be ignored.\n\nC. Complex Images (charts, infographics): Detailed Descriptions: Provide a more detailed description either in the alt attribute or in adjacent text. If using the alt attribute, it should be concise and a more thorough description should be available elsewhere on the page.\n\nD. Audio and Video: Transcripts: Ensure audio content has a text transcript available. For video content, provide captions and/or a transcript.\nDescriptive Labels: For video players, make sure buttons and controls have descriptive labels.\n\nE. Icons and Buttons: Text Labels: Icons used as buttons should have aria-labels or other text equivalents to describe their function. For example, a search icon button should have aria-label=\"Search\".",
		ToolMethod:   "- Chrome plugin\n- Browser dev. tool\n- Screen reader (optional)",
		WhereToCheck: "- Images\n- Decorative images\n- Complex images\n- Audio and video\n- Icons and buttons",
	},
	{
		ID:           "2.5.3",
		DisplayName:  "2.5.3 Label in Name",
		Category:     CategoryOperable,
		Level:        "A",
		Description:  "The text a user sees on a button or link should match what assistive technologies (like screen readers) announce.",
		HowToCheck:   "1. Look at buttons, links, and form fields. Ensure that their visible labels match their underlying programmatic names.\n2. Use a screen reader to verify that the text announced matches the visible label.",
		ToolMethod:   "Manual inspection (read)\n- Screen reader",
		WhereToCheck: "Interactive elements that include a label such as:\n- Links\n- Buttons\n- Form fields\n- Checkboxes\n- Radiobuttons",
	},
	{
		ID:           "3.3.2",
		DisplayName:  "3.3.2 Labels or Instructions",
		Category:     CategoryUnderstandable,
		Level:        "A",
		Description:  "When an interface requires input, labels or instructions are shown (in text).",
		HowToCheck:   "1. Ensure all form fields have visible and clear labels explaining what input is required.\n2. Check for Placeholder Text or Instructions:\n3. Verify that instructions are provided if more detail is needed to complete a form field.",
		ToolMethod:   "Manual inspection (doing)",
		WhereToCheck: "Find interactive components that require user input such as:\n- Text fields\n- Date fields\n- Field for postalcode\n- Field for phone number\n- Search field",
	},
	{
		ID:           "4.1.2",
		DisplayName:  "4.1.2 Name, Role, Value",
		Category:     CategoryRobust,
		Level:        "A",
		Description:  "All buttons, forms, and other controls should be correctly coded so that assistive technologies can recognize them and announce their purpose to users.",
		HowToCheck:   "Inspect buttons, form fields, and other interactive elements to ensure they have correct labels, roles, and values defined in the HTML.",
		ToolMethod:   "Manual inspection\n- Plugin Chrome\n- Browser dev. tool (check name, role, value)\n- Screen reader",
		WhereToCheck: "Test every interactive components such as:\n- Buttons\n- Links\n- Lists\n- Groups\n- Radiobuttons\n- Checkboxes\n- Formfields\n- Images\n- Custom components I",
	},
	{
		ID:           "1.3.2",
		DisplayName:  "1.3.2 Meaningful Sequence",
		Category:     CategoryPerceivable,
		Level:        "A",
		Description:  "The order in which content is presented on the screen should match the order in which it is read by screen readers. This helps users who rely on assistive technologies to understand the content in the intended sequence.",
		HowToCheck:   "1. Linear Navigation: Navigate through the webpage using the keyboard (e.g., Tab key) to ensure the focus moves in a logical order.\n2. Screen Readers: Use a screen reader to read through the page and verify that the reading order matches the visual order.\n3. Code Inspection: Check the HTML source code to ensure elements are arranged in a logical sequence that matches their visual presentation.",
		ToolMethod:   "Automated:\n- Use this plugin\n\nManual inspection:\n- Keyboard (e.g. tab key)\n- Screen reader\n- Browser dev. tool",
		WhereToCheck: "Full screen",
	},
	{
		ID:           "1.4.1",
		DisplayName:  "1.4.1 Use of Color",
		Category:     CategoryPerceivable,
		Level:        "A",
		Description:  "Do not rely on color alone to convey important information. There should be other indicators like text labels or patterns.",
		HowToCheck:   "- Color-dependent Elements:\nReview the webpage to ensure that color is not the sole method used to convey information. For example, links should be underlined in addition to being a different color.\n- Textual or Icon Indicators: Check that information conveyed with color is also available through text or icons. For example, errors in a form should be indicated with text like 'Error' or an icon, not just a red border",
		ToolMethod:   "Manual Inspection: Visually Inspect the webpage for color-dependent elements.",
		WhereToCheck: "- Links\n- Errors\n- Others\n- Text\n- Icons",
	},
	{
		ID:           "1.3.3",
		DisplayName:  "1.3.3 Sensory Characteristics",
		Category:     CategoryPerceivable,
		Level:        "A",
		Description:  "Instructions for using a webpage should not depend only on visual or auditory cues. For example, do not say 'click the red button' without additional context.",
		HowToCheck:   "- Instruction Text:\nReview instructions to ensure they do not rely solely on sensory information. For example, instead of 'Click the red button,' use 'Click the red button labelled Submit.'\n\n- Alternative Descriptions:\nEnsure alternative text or instructions are provided for any elements that rely on sensory characteristics.",
		ToolMethod:   "Manual Inspection",
		WhereToCheck: "Full screen",
	},
	{
		ID:           "1.3.5",
		DisplayName:  "1.3.5 Identify Input Purpose",
		Category:     CategoryPerceivable,
		Level:        "AA",
		Description:  "Input fields (like name, email, address) should have clear labels and purpose identifiers so that browsers and assistive technologies can understand and autofill them correctly.",
		HowToCheck:   "- Input Field Labels: Ensure each input field has a clear and descriptive label.\n- Auto complete: Check if autocomplete suggestion is provided",
		ToolMethod:   "Manual inspection (doing)",
		WhereToCheck: "Forms and input fields",
	},
	{
		ID:           "3.3.7",
		DisplayName:  "3.3.7 Redundant Entry",
		Category:     CategoryUnderstandable,
		Level:        "A",
		Description:  "Users should not have to enter the same information multiple times on a website unless needed.",
		HowToCheck:   "Check forms and other input areas to ensure that users are not required to re-enter information they have already provided.",
		ToolMethod:   "Manual Inspection (doing)",
		WhereToCheck: "Look for situations such as:\n- Entering a billing and a delivery address\n- Show previously search term in search",
	},
	{
		ID:           "3.3.8",
		DisplayName:  "3.3.8 Accessible Authentication (Minimum)",
		Category:     CategoryUnderstandable,
		Level:        "AA",
		Description:  "Authentication does not require cognitive function, such as remembering a password (the user needs the option to autofill/paste it from a password manager).",
		HowToCheck:   "1. Check if authentication methods do not rely solely on memory or cognitive skills.\n2. Check if alternative authentication options (e.g., password managers) are available.",
		ToolMethod:   "Manual Inspection (doing)",
		WhereToCheck: "Login & authentication",
	},
	{
		ID:           "3.3.3",
		DisplayName:  "3.3.3 Error Suggestion",
		Category:     CategoryUnderstandable,
		Level:        "AA",
		Description:  "If users make a mistake (like entering an invalid email), the error message should suggest how to fix it (e.g., 'Please enter a valid email address').",
		HowToCheck:   "Intentionally make an error in a form and check if the error message suggests how to fix it.",
		ToolMethod:   "Manual Inspection (doing)",
		WhereToCheck: "Find interactive components that require user input such as:\n- Text fields\n- Date fields\n- Field for postalcode\n- Field for phone number\n- Search field",
	},
	{
		ID:           "3.3.1",
		DisplayName:  "3.3.1 Error Identification",
		Category:     CategoryUnderstandable,
		Level:        "A",
		Description:  "If there is an error (e.g. when filling out a form), users should be told exactly what went wrong and how to fix it.",
		HowToCheck:   "1. Intentionally make an error in a form (e.g., leave a required field empty) and check whether the error is clearly indicated.\n2. Ensure that error messages explain both the problem and how to correct it.",
		ToolMethod:   "Manual Inspection (doing)",
		WhereToCheck: "Look for situations where an error can happen such as:\n- Fill in and submit a form\n- Empty state\n- Situations (e.g. no internet connection)",
	},
	{
		ID:           "3.3.4",
		DisplayName:  "3.3.4 Error Prevention (Legal, Financial, Data)",
		Category:     CategoryUnderstandable,
		Level:        "AA",
		Description:  "For critical actions (like signing contracts or making purchases), users should have the chance to review their input and confirm it before the action is completed.",
		HowToCheck:   "Verify that users are given a chance to review and confirm their inputs before submitting important information (e.g., legal, financial, or personal data).",
		ToolMethod:   "Manual Inspection (doing)",
		WhereToCheck: "Look for features that involve critical actions such as:\n- Payment flows\n- Look for situations such as:\n- When entering a form field incorrectly\n- When showning search results\n- When showing a status message (e.g. processing)\n- When showing a confirmation",
	},
	{
		ID:           "4.1.3",
		DisplayName:  "4.1.3 Status Messages",
		Category:     CategoryRobust,
		Level:        "AA",
		Description:  "Users should be notified of important status messages (like a form submission confirmation) in a way that is easy to understand and accessible.",
		HowToCheck:   "Trigger status messages (e.g., submit a form or trigger an error) and verify that they are clearly visible and announced by assistive technologies.",
		ToolMethod:   "Manual inspection (doing)\n- Screen reader",
		WhereToCheck: "Look for situations such as:\n- When entering a form field incorrectly\n- When showing search results\n- When showing a status message (e.g. processing)\n- When showing a confirmation",
	},
	{
		ID:           "2.4.4",
		DisplayName:  "2.4.4 Link Purpose (In Context)",
		Category:     CategoryOperable,
		Level:        "A",
		Description:  "Each link's purpose should be clear from either the link text or the context around it, so users know what will happen when they click.",
		HowToCheck:   "1. Review the link text to ensure it's descriptive enough (e.g., 'Learn more about our services' instead of just 'Learn more')\n2. If the link text is ambiguous, check if the surrounding content makes its purpose clear",
		ToolMethod:   "- Manually (read)\n- Screen reader",
		WhereToCheck: "Every interactive element on the screen",
	},
	{
		ID:           "2.4.6",
		DisplayName:  "2.4.6 Headings and Labels",
		Category:     CategoryOperable,
		Level:        "AA",
		Description:  "Headings should describe the sections of content, and labels should clearly explain form fields or interactive elements.",
		HowToCheck:   "1. Check for Descriptive Headings:\nReview headings throughout the page to ensure they accurately describe the content that follows.\n\n2. Check Form Labels:\nInspect form fields and interactive elements to confirm they have descriptive labels that explain their purpose.",
		ToolMethod:   "Manual inspection (read)",
		WhereToCheck: "- Headings\n- Form labels",
	},
	{
		ID:           "3.2.4",
		DisplayName:  "3.2.4 Consistent Identification",
		Category:     CategoryUnderstandable,
		Level:        "AA",
		Description:  "Similar buttons or functions should look and behave the same on all pages of the site.",
		HowToCheck:   "Compare similar functions (e.g., submit buttons or links) across different pages to ensure they have consistent labels and behaviors.",
		ToolMethod:   "Visually Inspect",
		WhereToCheck: "Across the whole website/app (or multiple screens). Look for interactive elements such as:\n- Buttons\n- Links\n- Icons\n- Custom components",
	},
	{
		ID:           "1.4.5",
		DisplayName:  "1.4.5 Images of Text",
		Category:     CategoryPerceivable,
		Level:        "AA",
		Description:  "Avoid using images to display text. Use actual text instead, unless the image of text is essential for presentation.",
		HowToCheck:   "Review the webpage for images of text and assess if they can be replaced with actual text.",
		ToolMethod:   "Manual Inspection (Visually Inspect)",
		WhereToCheck: "Images of text",
	},
	{
		ID:           "1.4.4",
		DisplayName:  "1.4.4 Resize Text",
		Category:     CategoryPerceivable,
		Level:        "AA",
		Description:  "Users should be able to enlarge text up to twice its original size without issues in readability or functionality.",
		HowToCheck:   "Use browser zoom to increase text size up to 200% and verify that the content remains readable and functional.\nNo overlapping or cut-off content at 200% zoom.",
		ToolMethod:   "Browser: Increase the fontsize of the browser",
		WhereToCheck: "Full screen",
	},
	{
		ID:           "1.4.12",
		DisplayName:  "1.4.12 Text Spacing",
		Category:     CategoryPerceivable,
		Level:        "AA",
		Description:  "Text should remain legible and functional even when spacing between characters, lines, words, or paragraphs is increased.",
		HowToCheck:   "1. Apply these settings:\n- Line height to at least 1.5 times the font size.\n- Paragraph spacing to at least 2 times the font size.\n- Letter spacing to at least 0.12 times the font size.\n- Word spacing to at least 0.16 times the font size.\n2. Ensure text does not overlap or get cut off and remains readable and functional with the new spacing.",
		ToolMethod:   "Use this plugin",
		WhereToCheck: "All text on the screen",
	},
}))
