/*
Package cosmic implements the text-editing engine of a COSMIC-style text
input widget, independent of any rendering backend.

# Overview

The engine is a set of small state machines composed by TextInput:

  - Value/Cursor: grapheme-cluster text content and caret/selection state
  - Editor: insert, backspace, delete and paste over a value/cursor pair
  - Click: single/double/triple click classification
  - DragController/OfferController: both sides of text drag-and-drop
  - Focus/FocusArbiter: blink timing and the single-focused-field invariant

The host framework supplies the collaborators: a TextMeasurer for layout
and hit testing, a Clipboard, a DragDropService, and the event loop that
feeds Update. The engine returns immediately from every call; asynchronous
platform round-trips (drag negotiation, payload delivery) come back as
events on a later tick.

# Quick Start

	arbiter := cosmic.NewFocusArbiter()
	input := cosmic.NewTextInput(measurer,
	    cosmic.WithTheme(cosmic.DarkTheme()),
	    cosmic.WithClipboard(cosmic.SystemClipboard{}),
	    cosmic.WithFocusArbiter(arbiter),
	    cosmic.WithOnInput(func(content string) { model.Name = content }),
	    cosmic.WithOnSubmit(func(content string) { model.Save() }),
	)
	input.SetBounds(cosmic.Rect{X: 10, Y: 10, W: 240, H: 32})

	// Event loop
	status := input.Update(ev, time.Now())

# Keyboard Shortcuts Reference

Navigation:

	Left/Right       Move caret one grapheme
	Ctrl+Left/Right  Move caret one word (start/end of value when masked)
	Home/End         Jump to start/end of text

Selection:

	Shift+Left/Right       Extend selection one grapheme
	Ctrl+Shift+Left/Right  Extend selection one word
	Shift+Home/End         Select to start/end
	Ctrl+A                 Select all

Editing and clipboard:

	Backspace/Delete       Delete selection, or one grapheme
	Ctrl+Backspace/Delete  Delete to word boundary
	Ctrl+C/X/V             Copy, cut, paste (disabled for password fields)
	Enter                  Submit
	Escape                 Unfocus
	Tab                    Tab message, or unfocus for traversal

Mouse:

	Click         Place caret; click on a selection arms a drag
	Double-click  Select word (whole value when masked)
	Triple-click  Select all
	Drag          Extend selection, or export the selection as a text drag

# Password Fields

WithPassword masks the displayed value with a fixed glyph per grapheme, so
cursor arithmetic is unchanged. Word operations degrade to whole-value
jumps and copy/cut are rejected; double-click selects everything.

# Drag and Drop

A press inside an existing selection arms a drag; travelling past
DragThreshold cuts the selection and exports it through the injected
DragDropService. Incoming offers advertising a plain-text mime type move
the caret with the hover position and paste the payload on drop. Both
machines collapse to idle on any cancel, leave, or malformed payload.
LocalDragDrop is an in-process service for drags between widgets of the
same application.
*/
package cosmic
